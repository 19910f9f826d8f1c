package assets

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "folio/internal/platform/errors"
	kit "folio/internal/platform/testkit"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/loc.csv"))
	assert.True(t, IsRemote("HTTP://example.com"))
	assert.False(t, IsRemote("data/loc.csv"))
}

func TestOpen_Local(t *testing.T) {
	dir := kit.WriteFiles(t, map[string]string{"loc.csv": kit.LocCSV})
	f := NewFetcher(Options{})

	rc, err := f.Open(context.Background(), filepath.Join(dir, "loc.csv"))
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	assert.Equal(t, kit.LocCSV, string(body))

	_, err = f.Open(context.Background(), filepath.Join(dir, "nope.csv"))
	assert.Equal(t, perr.ErrorCodeNotFound, perr.CodeOf(err))

	_, err = f.Open(context.Background(), "  ")
	assert.Equal(t, perr.ErrorCodeInvalidArgument, perr.CodeOf(err))
}

func TestOpen_Remote(t *testing.T) {
	srv := kit.ServeFiles(t, map[string]string{"/lib/projects.json": kit.ProjectsJSON})
	f := NewFetcher(Options{UserAgent: "folio-test"})

	got, err := Load(context.Background(), f, srv.URL+"/lib/projects.json", func(r io.Reader) (string, error) {
		b, err := io.ReadAll(r)
		return string(b), err
	})
	require.NoError(t, err)
	assert.Equal(t, kit.ProjectsJSON, got)

	_, err = f.Open(context.Background(), srv.URL+"/missing.json")
	assert.Equal(t, perr.ErrorCodeUpstream, perr.CodeOf(err))
	assert.True(t, perr.Retryable(err))
}

func TestOpen_RemoteTooLarge(t *testing.T) {
	srv := kit.ServeFiles(t, map[string]string{"/big.csv": strings.Repeat("x", 64)})
	f := NewFetcher(Options{MaxBytes: 16})
	_, err := f.Open(context.Background(), srv.URL+"/big.csv")
	assert.Equal(t, perr.ErrorCodeInvalidArgument, perr.CodeOf(err))
}

func TestLoad_ParseErrorPropagates(t *testing.T) {
	dir := kit.WriteFiles(t, map[string]string{"p.json": "{"})
	_, err := Load(context.Background(), NewFetcher(Options{}), filepath.Join(dir, "p.json"),
		func(io.Reader) (int, error) { return 0, perr.JSONErrf("bad") })
	assert.Equal(t, perr.ErrorCodeJSON, perr.CodeOf(err))
}
