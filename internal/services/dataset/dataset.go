// Package dataset holds the immutable data every page and endpoint renders from:
// line records, their commit summaries, the project list and the resume. It is
// built once at startup and only read afterwards
package dataset

import (
	"html/template"
	"io"
	"time"

	"folio/internal/core/commits"
	"folio/internal/core/loc"
	"folio/internal/core/projects"
	perr "folio/internal/platform/errors"
)

// Dataset is safe for concurrent reads
type Dataset struct {
	records  []loc.LineRecord
	commits  []commits.Summary
	projects []projects.Project
	resume   template.HTML

	loc     *time.Location
	repoURL string

	locErr      error
	projectsErr error
}

// New builds a dataset from already loaded parts. Commits are derived from records
// and kept in display order (ascending by time)
func New(records []loc.LineRecord, ps []projects.Project, repoURL string, zone *time.Location) *Dataset {
	if zone == nil {
		zone = time.UTC
	}
	return &Dataset{
		records:  records,
		commits:  commits.SortByTime(commits.Process(records, repoURL)),
		projects: ps,
		loc:      zone,
		repoURL:  repoURL,
	}
}

// Records returns every line record
func (d *Dataset) Records() []loc.LineRecord { return d.records }

// Commits returns the summaries ordered by time
func (d *Dataset) Commits() []commits.Summary { return d.commits }

// Projects returns the gallery entries in file order
func (d *Dataset) Projects() []projects.Project { return d.projects }

// Resume returns the rendered resume, empty when none was configured
func (d *Dataset) Resume() template.HTML { return d.resume }

// Location is the zone axis ticks are computed in
func (d *Dataset) Location() *time.Location { return d.loc }

// RepoURL is the repository commit links point into
func (d *Dataset) RepoURL() string { return d.repoURL }

// MetaReady reports whether the change log loaded. The meta views are disabled otherwise
func (d *Dataset) MetaReady() error {
	if d.locErr != nil {
		return perr.Wrap(d.locErr, perr.ErrorCodeDisabled, "commit history unavailable")
	}
	return nil
}

// ProjectsReady reports whether the project list loaded
func (d *Dataset) ProjectsReady() error {
	if d.projectsErr != nil {
		return perr.Wrap(d.projectsErr, perr.ErrorCodeDisabled, "projects unavailable")
	}
	return nil
}

// FromReaders parses a change log and a project list into a dataset. Either reader
// may be nil, which leaves that part empty but ready
func FromReaders(locR, projR io.Reader, repoURL string, zone *time.Location) (*Dataset, error) {
	var (
		records []loc.LineRecord
		ps      []projects.Project
		err     error
	)
	if locR != nil {
		if records, err = loc.Parse(locR); err != nil {
			return nil, err
		}
	}
	if projR != nil {
		if ps, err = projects.Parse(projR); err != nil {
			return nil, err
		}
	}
	return New(records, ps, repoURL, zone), nil
}
