package dataset

import (
	"context"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"folio/internal/adapters/assets"
	"folio/internal/core/loc"
	"folio/internal/core/projects"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
	"folio/internal/platform/markdown"
)

// Sources names where each part of the dataset comes from. Each source is a file
// path or an http(s) URL; an empty source is skipped
type Sources struct {
	Loc      string
	Projects string
	Resume   string
	RepoURL  string
	Zone     *time.Location
}

// SourcesFromConfig reads FOLIO_DATA_* style keys from cfg
func SourcesFromConfig(cfg config.Conf) Sources {
	zone := time.UTC
	if name := cfg.MayString("TZ", "UTC"); name != "" {
		if z, err := time.LoadLocation(name); err == nil {
			zone = z
		} else {
			logger.Named("dataset").Warn().Err(err).Str("tz", name).Msg("unknown time zone, using UTC")
		}
	}
	return Sources{
		Loc:      cfg.MayString("LOC", "data/loc.csv"),
		Projects: cfg.MayString("PROJECTS", "data/projects.json"),
		Resume:   cfg.MayString("RESUME", ""),
		RepoURL:  cfg.MayString("REPO_URL", ""),
		Zone:     zone,
	}
}

// Opener is what the loader reads sources through
type Opener interface {
	loc.Opener
}

// Load reads every source concurrently. A source that fails is logged and leaves its
// part of the dataset disabled; the rest still loads. Only cancellation of ctx is
// returned as an error
func Load(ctx context.Context, o Opener, src Sources) (*Dataset, error) {
	log := logger.Named("dataset")
	var (
		records []loc.LineRecord
		ps      []projects.Project
		resume  string

		locErr, projErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, locErr = loc.Load(gctx, o, src.Loc)
		if locErr != nil {
			log.Error().Err(locErr).Str("src", src.Loc).Msg("change log failed to load, meta views disabled")
		}
		return gctx.Err()
	})
	g.Go(func() error {
		rc, err := o.Open(gctx, src.Projects)
		if err == nil {
			ps, err = projects.Parse(rc)
			_ = rc.Close()
		}
		if err != nil {
			projErr = err
			log.Error().Err(err).Str("src", src.Projects).Msg("projects failed to load, gallery disabled")
		}
		return gctx.Err()
	})
	if strings.TrimSpace(src.Resume) != "" {
		g.Go(func() error {
			rc, err := o.Open(gctx, src.Resume)
			if err != nil {
				log.Warn().Err(err).Str("src", src.Resume).Msg("resume failed to load")
				return gctx.Err()
			}
			defer rc.Close()
			b, err := io.ReadAll(rc)
			if err != nil {
				log.Warn().Err(err).Str("src", src.Resume).Msg("resume failed to read")
				return gctx.Err()
			}
			resume = string(b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := New(records, ps, src.RepoURL, src.Zone)
	d.locErr, d.projectsErr = locErr, projErr
	if resume != "" {
		d.resume = markdown.HTML(resume)
	}
	log.Info().
		Int("lines", len(d.records)).
		Int("commits", len(d.commits)).
		Int("projects", len(d.projects)).
		Bool("resume", resume != "").
		Msg("dataset loaded")
	return d, nil
}

var _ Opener = (*assets.Fetcher)(nil)
