// Package gitloc builds the line-level change log by blaming every file at HEAD
package gitloc

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"folio/internal/core/loc"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
)

// Options tune which files are blamed
type Options struct {
	// Rev is the revision to blame; empty means HEAD
	Rev string
	// Exclude holds path.Match patterns tested against the full path and the base name
	Exclude []string
	// TabWidth is the number of spaces one indentation level spans; 0 means 2
	TabWidth int
}

// DefaultExclude skips lockfiles and vendored trees
var DefaultExclude = []string{
	"package-lock.json", "*.lock", "go.sum", "node_modules/*", "vendor/*", "*.min.js", "*.svg",
}

// Generate opens the repository at dir and returns one record per line per file,
// attributed to the commit that last touched the line
func Generate(ctx context.Context, dir string, o Options) ([]loc.LineRecord, error) {
	if o.TabWidth <= 0 {
		o.TabWidth = 2
	}
	log := logger.Named("gitloc")

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "gitloc: no repository at %s", dir)
		}
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "gitloc: open repository")
	}

	commit, err := resolve(repo, o.Rev)
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "gitloc: read tree")
	}

	var paths []string
	err = tree.Files().ForEach(func(f *object.File) error {
		if excluded(f.Name, o.Exclude) {
			return nil
		}
		bin, err := f.IsBinary()
		if err != nil || bin {
			return nil
		}
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "gitloc: iterate files")
	}
	sort.Strings(paths)

	var out []loc.LineRecord
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := gogit.Blame(commit, p)
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("blame failed, skipping")
			continue
		}
		for i, ln := range res.Lines {
			out = append(out, Record(p, i+1, ln.Hash.String(), ln.Author, ln.Text, ln.Date, o.TabWidth))
		}
	}
	log.Info().Int("files", len(paths)).Int("lines", len(out)).Str("rev", commit.Hash.String()).Msg("change log generated")
	return out, nil
}

func resolve(repo *gogit.Repository, rev string) (*object.Commit, error) {
	var (
		h   *plumbing.Hash
		err error
	)
	if rev == "" {
		var ref *plumbing.Reference
		if ref, err = repo.Head(); err == nil {
			hh := ref.Hash()
			h = &hh
		}
	} else {
		h, err = repo.ResolveRevision(plumbing.Revision(rev))
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "gitloc: resolve %q", rev)
	}
	c, err := repo.CommitObject(*h)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeNotFound, "gitloc: read commit")
	}
	return c, nil
}

func excluded(name string, patterns []string) bool {
	base := path.Base(name)
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, name); ok {
			return true
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
		if dir := strings.TrimSuffix(pat, "/*"); dir != pat && strings.HasPrefix(name, dir+"/") {
			return true
		}
	}
	return false
}
