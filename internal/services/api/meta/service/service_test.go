package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/core/scatter"
	perr "folio/internal/platform/errors"
	kit "folio/internal/platform/testkit"
	"folio/internal/services/api/meta/domain"
	"folio/internal/services/dataset"
)

func f(v float64) *float64 { return &v }

func newSvc(t *testing.T) *Svc {
	t.Helper()
	ds, err := dataset.FromReaders(strings.NewReader(kit.LocCSV), nil, "https://github.com/me/site", nil)
	require.NoError(t, err)
	return New(ds)
}

type failingOpener struct{}

func (failingOpener) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, perr.NotFoundf("no such file")
}

func TestCommits(t *testing.T) {
	out, err := newSvc(t).Commits(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Commits, 3)
	assert.Equal(t, 6, out.Stats.TotalLOC)
	assert.Equal(t, 3, out.Stats.TotalCommits)
	require.NotNil(t, out.Extent)
	assert.True(t, out.Extent.Start.Equal(time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)))
	assert.True(t, out.Extent.End.Equal(time.Date(2024, 3, 3, 19, 15, 0, 0, time.UTC)))
}

func TestFilter(t *testing.T) {
	s := newSvc(t)

	all, err := s.Filter(context.Background(), domain.FilterQuery{})
	require.NoError(t, err)
	assert.Equal(t, 100.0, all.Progress)
	assert.Len(t, all.Commits, 3)
	assert.Equal(t, "March 3, 2024 at 2:15 PM", all.CutoffLabel)

	part, err := s.Filter(context.Background(), domain.FilterQuery{Progress: f(70)})
	require.NoError(t, err)
	require.Len(t, part.Commits, 2)
	assert.Equal(t, 5, part.Stats.TotalLOC)
	assert.Equal(t, 3, part.Stats.Files)
	assert.Equal(t, []domain.FileRow{
		{Name: "index.html", Lines: 2},
		{Name: "main.js", Lines: 2},
		{Name: "style.css", Lines: 1},
	}, part.Files)

	first, err := s.Filter(context.Background(), domain.FilterQuery{Progress: f(0)})
	require.NoError(t, err)
	require.Len(t, first.Commits, 1)
	assert.Equal(t, "c1", first.Commits[0].ID)
}

func TestFilePanel(t *testing.T) {
	s := newSvc(t)
	panel, err := s.FilePanel(context.Background(), domain.FilterQuery{})
	require.NoError(t, err)
	require.Len(t, panel, 3)
	assert.Equal(t, "main.js", panel[0].Name)
	assert.Len(t, panel[0].Units, 3)
	// html was seen first in the log, so it owns the first palette color
	assert.Equal(t, "#4e79a7", panel[1].Units[0].Color)
}

func TestScatter(t *testing.T) {
	s := newSvc(t)

	fresh, err := s.Scatter(context.Background(), domain.ScatterQuery{})
	require.NoError(t, err)
	require.Len(t, fresh.Transitions, 3)
	for _, tr := range fresh.Transitions {
		assert.Equal(t, scatter.Entering, tr.Phase)
	}
	assert.Equal(t, scatter.EnterDuration, fresh.Duration)

	back, err := s.Scatter(context.Background(), domain.ScatterQuery{Progress: f(50), From: f(100)})
	require.NoError(t, err)
	require.Len(t, back.Marks, 1)
	require.Len(t, back.Transitions, 3)
	assert.Equal(t, "c1", back.Transitions[0].Key)
	assert.Equal(t, scatter.Present, back.Transitions[0].Phase)
	assert.Equal(t, scatter.Exiting, back.Transitions[1].Phase)
	assert.Equal(t, scatter.Exiting, back.Transitions[2].Phase)

	win, err := s.Scatter(context.Background(), domain.ScatterQuery{Top: f(0), Progress: f(0)})
	require.NoError(t, err)
	assert.Len(t, win.Marks, 3, "top wins over progress")
}

func TestBrush(t *testing.T) {
	s := newSvc(t)

	res, err := s.Brush(context.Background(), domain.BrushQuery{X0: f(1000), Y0: f(600), X1: f(0), Y1: f(0)})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "3 commits selected", res.CountText)

	none, err := s.Brush(context.Background(), domain.BrushQuery{})
	require.NoError(t, err)
	assert.Equal(t, "No commits selected", none.CountText)
	require.Len(t, none.Breakdown, 3)
	assert.Equal(t, "html", none.Breakdown[0].Kind)
	assert.Equal(t, "33.3%", none.Breakdown[0].Formatted)
	assert.Equal(t, "50.0%", none.Breakdown[2].Formatted)

	_, err = s.Brush(context.Background(), domain.BrushQuery{X0: f(1), Y0: f(1)})
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeValidation, perr.CodeOf(err))
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "x1", e.Field())
}

func TestWindow(t *testing.T) {
	s := newSvc(t)

	w, err := s.Window(context.Background(), domain.WindowQuery{Top: 0})
	require.NoError(t, err)
	assert.Equal(t, domain.KindCommits, w.Kind)
	assert.Equal(t, 270, w.Window.Height)
	require.Len(t, w.Items, 3)
	assert.True(t, w.Items[0].FirstEver)
	assert.Nil(t, w.Files)

	fw, err := s.Window(context.Background(), domain.WindowQuery{Top: -40, Kind: domain.KindFiles})
	require.NoError(t, err)
	assert.Equal(t, 0, fw.Window.Start)
	require.Len(t, fw.Files, 3)
	assert.Equal(t, "main.js", fw.Files[0].Name)
	assert.Contains(t, fw.Items[0].Text, "This pushed my codebase to new complexity!")
}

func TestDisabledWhenHistoryMissing(t *testing.T) {
	ds, err := dataset.Load(context.Background(), failingOpener{}, dataset.Sources{Loc: "loc.csv", Projects: "p.json"})
	require.NoError(t, err)
	s := New(ds)

	_, err = s.Commits(context.Background())
	assert.Equal(t, perr.ErrorCodeDisabled, perr.CodeOf(err))
	_, err = s.Scatter(context.Background(), domain.ScatterQuery{})
	assert.Equal(t, perr.ErrorCodeDisabled, perr.CodeOf(err))
	_, err = s.Window(context.Background(), domain.WindowQuery{})
	assert.Equal(t, perr.ErrorCodeDisabled, perr.CodeOf(err))
}

// longHistory is twelve one-line commits three days apart, all at noon
func longHistory(t *testing.T) *Svc {
	t.Helper()
	var b strings.Builder
	b.WriteString("commit,file,line,depth,length,date,time,timezone,author,datetime,type\n")
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		d := start.AddDate(0, 0, 3*i)
		fmt.Fprintf(&b, "c%02d,main.go,%d,0,10,%s,12:00:00+00:00,+00:00,me,%s,go\n",
			i, i+1, d.Format("2006-01-02"), d.Format("2006-01-02T15:04:05.000-07:00"))
	}
	ds, err := dataset.FromReaders(strings.NewReader(b.String()), nil, "", nil)
	require.NoError(t, err)
	return New(ds)
}

func TestBrushFollowsScrollWindow(t *testing.T) {
	s := longHistory(t)
	ctx := context.Background()

	drawn, err := s.Scatter(ctx, domain.ScatterQuery{Top: f(0)})
	require.NoError(t, err)
	require.Len(t, drawn.Marks, 10)
	m := drawn.Marks[9]
	require.Equal(t, "c09", m.Key)

	res, err := s.Brush(ctx, domain.BrushQuery{
		Top: f(0),
		X0:  f(m.X - 1), Y0: f(m.Y - 1),
		X1: f(m.X + 1), Y1: f(m.Y + 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c09"}, res.Selected)
	assert.Equal(t, "1 commits selected", res.CountText)
}
