// Package assets opens the static data files the site renders from, either from disk
// or over plain HTTP GET
package assets

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 64 << 20
)

// Options configures the Fetcher
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// MaxBytes caps a remote body; 0 uses the default
	MaxBytes int64
}

// Fetcher opens local paths and http(s) URLs
type Fetcher struct {
	client   *resty.Client
	maxBytes int64
	log      logger.Logger
}

// NewFetcher builds a fetcher with sane defaults
func NewFetcher(o Options) *Fetcher {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}
	c := resty.New().
		SetTimeout(o.Timeout).
		SetHeader("Accept", "application/json, text/csv, */*")
	if o.UserAgent != "" {
		c.SetHeader("User-Agent", o.UserAgent)
	}
	return &Fetcher{client: c, maxBytes: o.MaxBytes, log: *logger.Named("assets")}
}

// IsRemote reports whether src is an http(s) URL
func IsRemote(src string) bool {
	s := strings.ToLower(src)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Open returns a reader over src. Callers close it
func (f *Fetcher) Open(ctx context.Context, src string) (io.ReadCloser, error) {
	if strings.TrimSpace(src) == "" {
		return nil, perr.InvalidArgf("assets: empty source")
	}
	if !IsRemote(src) {
		fh, err := os.Open(src)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "assets: %s", src)
			}
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "assets: open %s", src)
		}
		return fh, nil
	}

	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(src)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "assets: GET %s", src)
	}
	f.log.Debug().
		Str("url", src).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("asset fetched")
	if resp.IsError() {
		return nil, perr.Newf(perr.ErrorCodeUpstream, "assets: GET %s: %s", src, resp.Status())
	}
	body := resp.Body()
	if int64(len(body)) > f.maxBytes {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "assets: %s exceeds %d bytes", src, f.maxBytes)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// Load opens src and hands the reader to parse, closing it afterwards
func Load[T any](ctx context.Context, f *Fetcher, src string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := f.Open(ctx, src)
	if err != nil {
		return zero, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			f.log.Warn().Err(cerr).Str("src", src).Msg("close asset")
		}
	}()
	return parse(rc)
}
