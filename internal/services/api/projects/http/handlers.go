// Package http provides http transport for the project gallery
package http

import (
	stdhttp "net/http"

	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/swaggerkit"
	"folio/internal/services/api/projects/domain"
)

// Register mounts project endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.GalleryQuery](r, "/", h.gallery)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Search the gallery and filter by a pie slice
// @Tags Projects
// @Router /projects [get]
func (h *handlers) gallery(r *stdhttp.Request, in domain.GalleryQuery) (any, error) {
	return h.svc.Gallery(r.Context(), in)
}

// Docs documents the project endpoints relative to prefix
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.Schema(spec, "Gallery", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query":    map[string]any{"type": "string"},
				"selected": map[string]any{"type": "integer"},
				"title":    map[string]any{"type": "string"},
				"projects": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
				"slices":   map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
			},
		})
		swaggerkit.AddPath(spec, prefix, "get", "Search the gallery and filter by a pie slice", "Projects",
			[]map[string]any{
				swaggerkit.QueryParam("q", "string", "case-insensitive search over every field"),
				swaggerkit.QueryParam("selected", "integer", "currently selected slice, -1 for none"),
				swaggerkit.QueryParam("toggle", "integer", "clicked slice"),
			}, "#/components/schemas/Gallery")
	}
}
