// Package service builds the project gallery views
package service

import (
	"context"

	"folio/internal/core/pie"
	"folio/internal/core/projects"
	"folio/internal/services/api/projects/domain"
	"folio/internal/services/dataset"
)

// Service defines the projects service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the projects service
type Svc struct {
	ds *dataset.Dataset
}

// New constructs a projects service
func New(ds *dataset.Dataset) *Svc {
	if ds == nil {
		panic("projects.Service requires a non nil dataset")
	}
	return &Svc{ds: ds}
}

// Gallery searches, rolls up by year and narrows to the selected slice
func (s *Svc) Gallery(_ context.Context, q domain.GalleryQuery) (domain.GalleryResponse, error) {
	if err := s.ds.ProjectsReady(); err != nil {
		return domain.GalleryResponse{}, err
	}
	g := projects.Build(s.ds.Projects(), q.Q, q.Selection())

	data := make([]pie.Datum, 0, len(g.Years))
	for _, y := range g.Years {
		data = append(data, pie.Datum{Label: string(y.Year), Value: float64(y.Count)})
	}
	laid := pie.Layout(data)

	out := domain.GalleryResponse{
		Query:    g.Query,
		Selected: g.Selected,
		Title:    projects.Title(len(s.ds.Projects())),
		Projects: views(g.Shown),
		Slices:   make([]domain.Slice, 0, len(laid)),
	}
	for _, sl := range laid {
		out.Slices = append(out.Slices, domain.Slice{
			Index:    sl.Index,
			Label:    sl.Datum.Label,
			Value:    sl.Datum.Value,
			Color:    sl.Color,
			Path:     pie.ArcPath(sl, pie.Radius),
			Selected: sl.Index == g.Selected,
		})
	}
	return out.WithPie(laid), nil
}

// Latest returns the first n projects of the list
func (s *Svc) Latest(_ context.Context, n int) ([]domain.ProjectView, error) {
	if err := s.ds.ProjectsReady(); err != nil {
		return nil, err
	}
	return views(projects.Latest(s.ds.Projects(), n)), nil
}

func views(ps []projects.Project) []domain.ProjectView {
	out := make([]domain.ProjectView, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.ProjectView{Project: p, DescriptionHTML: p.DescriptionHTML()})
	}
	return out
}
