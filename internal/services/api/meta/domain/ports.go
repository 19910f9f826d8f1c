package domain

import (
	"context"

	"folio/internal/core/brush"
	"folio/internal/core/scrolly"
)

// ServicePort is consumed by the JSON handlers and by the site pages
type ServicePort interface {
	Commits(ctx context.Context) (CommitsResponse, error)
	Filter(ctx context.Context, q FilterQuery) (FilterResponse, error)
	FilePanel(ctx context.Context, q FilterQuery) ([]scrolly.FileDetail, error)
	Scatter(ctx context.Context, q ScatterQuery) (ScatterResult, error)
	Brush(ctx context.Context, q BrushQuery) (brush.Result, error)
	Window(ctx context.Context, q WindowQuery) (WindowResponse, error)
}
