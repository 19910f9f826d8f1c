// Package service derives the commit history views from the loaded dataset
package service

import (
	"context"
	"time"

	"folio/internal/core/brush"
	"folio/internal/core/commits"
	"folio/internal/core/scale"
	"folio/internal/core/scatter"
	"folio/internal/core/scrolly"
	"folio/internal/core/timefilter"
	"folio/internal/services/api/meta/domain"
	"folio/internal/services/dataset"
)

// CutoffLayout is how the slider label shows the cutoff time
const CutoffLayout = "January 2, 2006 at 3:04 PM"

// Service defines the meta service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the meta service over an immutable dataset. Every call derives its
// own view, so Svc is safe for concurrent use
type Svc struct {
	ds     *dataset.Dataset
	geom   scatter.Geometry
	colors *scale.Ordinal
	scroll scrolly.Config
}

// New constructs a meta service
func New(ds *dataset.Dataset) *Svc {
	if ds == nil {
		panic("meta.Service requires a non nil dataset")
	}
	// seed the palette so a file type keeps its color whatever window shows it first
	var kinds []string
	seen := map[string]bool{}
	for _, r := range ds.Records() {
		if k := r.Kind(); !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return &Svc{
		ds:     ds,
		geom:   scatter.DefaultGeometry,
		colors: scale.NewOrdinal(scale.Tableau10, kinds...),
		scroll: scrolly.Default,
	}
}

// Colors is the file type palette shared by the file list and the narrative panel
func (s *Svc) Colors() *scale.Ordinal { return s.colors }

// Commits returns the full history in display order
func (s *Svc) Commits(_ context.Context) (domain.CommitsResponse, error) {
	if err := s.ds.MetaReady(); err != nil {
		return domain.CommitsResponse{}, err
	}
	all := s.ds.Commits()
	out := domain.CommitsResponse{
		Commits: all,
		Stats:   commits.ComputeStats(s.ds.Records(), all),
	}
	if lo, hi, ok := timefilter.Extent(all); ok {
		out.Extent = &domain.Extent{Start: lo, End: hi}
	}
	return out, nil
}

// Filter applies the slider: commits up to the cutoff, their stats and their files
func (s *Svc) Filter(_ context.Context, q domain.FilterQuery) (domain.FilterResponse, error) {
	if err := s.ds.MetaReady(); err != nil {
		return domain.FilterResponse{}, err
	}
	all := s.ds.Commits()
	p := timefilter.Clamp(q.Value())
	picked := timefilter.Filter(all, p)
	lines := commits.LinesOf(s.ds.Records(), picked)

	out := domain.FilterResponse{
		Progress: p,
		Commits:  picked,
		Stats:    commits.ComputeStats(lines, picked),
		Files:    make([]domain.FileRow, 0),
	}
	if cut, ok := timefilter.Cutoff(all, p); ok {
		out.Cutoff = &cut
		out.CutoffLabel = cut.Format(CutoffLayout)
	}
	for _, f := range commits.Files(lines) {
		out.Files = append(out.Files, domain.FileRow{Name: f.Name, Lines: f.Count()})
	}
	return out, nil
}

// FilePanel is the slider's file list with one colored unit per line
func (s *Svc) FilePanel(_ context.Context, q domain.FilterQuery) ([]scrolly.FileDetail, error) {
	if err := s.ds.MetaReady(); err != nil {
		return nil, err
	}
	return scrolly.FilePanel(timefilter.Filter(s.ds.Commits(), q.Value()), s.colors), nil
}

// Scatter lays out the requested plot and reconciles it against the previous one
func (s *Svc) Scatter(_ context.Context, q domain.ScatterQuery) (domain.ScatterResult, error) {
	if err := s.ds.MetaReady(); err != nil {
		return domain.ScatterResult{}, err
	}
	next := s.layout(s.plotted(q.Progress, q.Top))

	var prev *scatter.Layout
	if q.From != nil || q.FromTop != nil {
		l := s.layout(s.plotted(q.From, q.FromTop))
		prev = &l
	}
	trs := scatter.Reconcile(prev, next)
	return domain.ScatterResult{
		Layout:      next,
		Marks:       next.Marks,
		Transitions: trs,
		Duration:    scatter.Duration(trs),
	}, nil
}

// Brush evaluates a selection drawn on the plot the query names, either a slider
// position or a scroll window. Selection runs over the whole history, not only the
// plotted commits
func (s *Svc) Brush(_ context.Context, q domain.BrushQuery) (brush.Result, error) {
	if err := s.ds.MetaReady(); err != nil {
		return brush.Result{}, err
	}
	sel, err := q.Selection()
	if err != nil {
		return brush.Result{}, err
	}
	l := s.layout(s.plotted(q.Progress, q.Top))
	return brush.Evaluate(sel, l.Scales, s.ds.Commits()), nil
}

// Window returns the narrative rows visible at a scroll offset
func (s *Svc) Window(_ context.Context, q domain.WindowQuery) (domain.WindowResponse, error) {
	if err := s.ds.MetaReady(); err != nil {
		return domain.WindowResponse{}, err
	}
	all := s.ds.Commits()
	w := s.scroll.At(q.Top, len(all))
	out := domain.WindowResponse{Kind: q.Kind, Window: w}
	switch q.Kind {
	case domain.KindFiles:
		out.Items = scrolly.FileItems(all, w)
		out.Files = scrolly.FilePanel(scrolly.Slice(all, w), s.colors)
	default:
		out.Kind = domain.KindCommits
		out.Items = scrolly.CommitItems(all, w)
	}
	return out, nil
}

// plotted picks the commits a plot shows: a scroll window when top is set, else the
// commits up to the slider position
func (s *Svc) plotted(progress, top *float64) []commits.Summary {
	all := s.ds.Commits()
	if top != nil {
		return scrolly.Slice(all, s.scroll.At(*top, len(all)))
	}
	return timefilter.Filter(all, domain.FilterQuery{Progress: progress}.Value())
}

func (s *Svc) layout(cs []commits.Summary) scatter.Layout {
	return scatter.NewLayout(cs, s.geom, s.location())
}

func (s *Svc) location() *time.Location {
	if l := s.ds.Location(); l != nil {
		return l
	}
	return time.UTC
}
