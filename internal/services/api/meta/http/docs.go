package http

import "folio/internal/modkit/swaggerkit"

// Docs documents the meta endpoints relative to prefix
func Docs(prefix string) swaggerkit.SpecMutator {
	progress := swaggerkit.QueryParam("progress", "number", "slider position 0-100, default 100")
	return func(spec map[string]any) {
		swaggerkit.Schema(spec, "MetaObject", map[string]any{"type": "object"})
		ref := "#/components/schemas/MetaObject"
		swaggerkit.AddPath(spec, prefix+"/commits", "get", "Commit history with headline stats", "Meta", nil, ref)
		swaggerkit.AddPath(spec, prefix+"/filter", "get", "Commits, stats and files up to a slider position", "Meta",
			[]map[string]any{progress}, ref)
		swaggerkit.AddPath(spec, prefix+"/files", "get", "File list with one colored unit per line", "Meta",
			[]map[string]any{progress}, ref)
		swaggerkit.AddPath(spec, prefix+"/scatter", "get", "Reconciled scatter marks and transitions", "Meta",
			[]map[string]any{
				progress,
				swaggerkit.QueryParam("from", "number", "previous slider position"),
				swaggerkit.QueryParam("top", "number", "scroll offset; plots one narrative window instead"),
				swaggerkit.QueryParam("fromTop", "number", "previous scroll offset"),
			}, ref)
		swaggerkit.AddPath(spec, prefix+"/brush", "get", "Evaluate a brush selection", "Meta",
			[]map[string]any{
				progress,
				swaggerkit.QueryParam("top", "number", "scroll offset of the plotted window; wins over progress"),
				swaggerkit.QueryParam("x0", "number", "selection corner"),
				swaggerkit.QueryParam("y0", "number", "selection corner"),
				swaggerkit.QueryParam("x1", "number", "opposite corner"),
				swaggerkit.QueryParam("y1", "number", "opposite corner"),
			}, ref)
		swaggerkit.AddPath(spec, prefix+"/window", "get", "Narrative rows visible at a scroll offset", "Meta",
			[]map[string]any{
				swaggerkit.QueryParam("top", "number", "scroll offset in pixels"),
				swaggerkit.QueryParam("kind", "string", "commits or files"),
			}, ref)
	}
}
