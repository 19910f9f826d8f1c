// Package http provides http transport for the commit history views
package http

import (
	stdhttp "net/http"

	"folio/internal/modkit/httpkit"
	"folio/internal/services/api/meta/domain"
)

// Register mounts meta endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// full history
	httpkit.Get(r, "/commits", h.commits)

	// slider
	httpkit.GetQuery[domain.FilterQuery](r, "/filter", h.filter)
	httpkit.GetQuery[domain.FilterQuery](r, "/files", h.files)

	// plot
	httpkit.GetQuery[domain.ScatterQuery](r, "/scatter", h.scatter)
	httpkit.GetQuery[domain.BrushQuery](r, "/brush", h.brush)

	// scrollytelling
	httpkit.GetQuery[domain.WindowQuery](r, "/window", h.window)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Commit history with headline stats
// @Tags Meta
// @Router /meta/commits [get]
func (h *handlers) commits(r *stdhttp.Request) (any, error) {
	return h.svc.Commits(r.Context())
}

// @Summary Commits up to a slider position
// @Tags Meta
// @Param progress query number false "0-100, default 100"
// @Router /meta/filter [get]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterQuery) (any, error) {
	return h.svc.Filter(r.Context(), in)
}

// @Summary File list with one unit per line
// @Tags Meta
// @Router /meta/files [get]
func (h *handlers) files(r *stdhttp.Request, in domain.FilterQuery) (any, error) {
	return h.svc.FilePanel(r.Context(), in)
}

// @Summary Reconciled scatter marks and transitions
// @Tags Meta
// @Router /meta/scatter [get]
func (h *handlers) scatter(r *stdhttp.Request, in domain.ScatterQuery) (any, error) {
	return h.svc.Scatter(r.Context(), in)
}

// @Summary Evaluate a brush selection
// @Tags Meta
// @Router /meta/brush [get]
func (h *handlers) brush(r *stdhttp.Request, in domain.BrushQuery) (any, error) {
	return h.svc.Brush(r.Context(), in)
}

// @Summary Narrative rows visible at a scroll offset
// @Tags Meta
// @Router /meta/window [get]
func (h *handlers) window(r *stdhttp.Request, in domain.WindowQuery) (any, error) {
	return h.svc.Window(r.Context(), in)
}
