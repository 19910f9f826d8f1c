// Package http provides service health, readiness and version endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"folio/internal/core/version"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/swaggerkit"
)

// Checker reports whether one dependency is usable
type Checker interface {
	Check(stdctx.Context) error
}

// CheckFunc adapts a function to Checker
type CheckFunc func(stdctx.Context) error

// Check implements Checker
func (f CheckFunc) Check(ctx stdctx.Context) error { return f(ctx) }

// Deps are the handler dependencies. A nil checker is reported as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      map[string]Checker
	// Order fixes the order checks are reported in
	Order []string
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the system routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"folio-web"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
	Uptime  int64  `json:"uptime"   example:"300"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"history"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"commit history unavailable: open data/loc.csv: no such file or directory"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// @Summary Health check
// @Tags System
// @Router /system/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := h.now()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness with per dependency checks
// @Tags System
// @Router /system/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.deps.Order))}
	for _, name := range h.deps.Order {
		c := h.deps.Checks[name]
		rc := ReadyCheck{Name: name, Status: "ok"}
		switch {
		case c == nil:
			rc.Status = "skipped"
		default:
			if err := c.Check(ctx); err != nil {
				rc.Status, rc.Error = "fail", err.Error()
				// the site still serves the parts that loaded
				out.Status = "degraded"
			}
		}
		out.Checks = append(out.Checks, rc)
	}
	out.Now = h.now().UTC().Format(time.RFC3339)
	return out, nil
}

// @Summary Build and version info
// @Tags System
// @Router /system/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// Docs documents the system endpoints relative to prefix
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.Schema(spec, "SystemObject", map[string]any{"type": "object"})
		ref := "#/components/schemas/SystemObject"
		swaggerkit.AddPath(spec, prefix+"/health", "get", "Health check", "System", nil, ref)
		swaggerkit.AddPath(spec, prefix+"/ready", "get", "Readiness with per dependency checks", "System", nil, ref)
		swaggerkit.AddPath(spec, prefix+"/version", "get", "Build and version info", "System", nil, ref)
	}
}
