// Package logger owns the process zerolog logger and its request-scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"folio/internal/platform/config/raw"
)

// Logger is zerolog's logger under the project name
type Logger = zerolog.Logger

// Options shape the root logger
type Options struct {
	Level   string
	Format  string // console or json
	Service string
	Caller  bool
	// SampleEvery keeps one event in N when N > 1
	SampleEvery int
	Writer      io.Writer
}

// FromEnv reads LOG_* through the raw view since config itself logs
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "debug"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "folio"),
		Caller:      env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

// New builds a logger from o without touching the process root
func New(o Options) Logger {
	w := o.Writer
	if w == nil {
		w = os.Stdout
	}
	if o.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(o.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	c := zerolog.New(w).Level(lvl).With().Timestamp()
	if o.Service != "" {
		c = c.Str("service", o.Service)
	}
	if o.Caller {
		c = c.Caller()
	}
	l := c.Logger()
	if o.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(o.SampleEvery)})
	}
	return l
}

var (
	mu   sync.RWMutex
	root *Logger
)

// Init replaces the root logger. main calls it once before anything logs
func Init(o Options) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := New(o)
	mu.Lock()
	root = &l
	mu.Unlock()
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		nl := New(FromEnv())
		root = &nl
	}
	return root
}

// Named returns a child tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyPage
)

// WithRequest stores the request id and the page or fragment name on ctx
func WithRequest(ctx context.Context, reqID, page string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if page != "" {
		ctx = context.WithValue(ctx, keyPage, page)
	}
	return ctx
}

// C returns a child of the root carrying whatever WithRequest stored on ctx
func C(ctx context.Context) *Logger {
	c := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		c = c.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyPage).(string); s != "" {
		c = c.Str("page", s)
	}
	l := c.Logger()
	return &l
}
