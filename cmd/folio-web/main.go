// @title         Folio API
// @version       0.1.0
// @description   Read only endpoints for the commit history and the project gallery

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/go-chi/chi/v5"

	"folio/internal/adapters/assets"
	"folio/internal/adapters/github"
	"folio/internal/modkit"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
	phttp "folio/internal/platform/net/http"
	"folio/internal/platform/net/middleware"
	"folio/internal/services/api"
	"folio/internal/services/dataset"
	"folio/internal/services/site/domain"
	sitemod "folio/internal/services/site/module"
)

func main() {
	// .env first so LOG_* and FOLIO_* below see it
	envErr := config.LoadDotEnv()

	root := config.New()
	webCfg := root.Prefix("FOLIO_WEB_")
	dataCfg := root.Prefix("FOLIO_DATA_")
	ghCfg := root.Prefix("FOLIO_GITHUB_")

	l := logger.Get()
	if envErr != nil {
		l.Warn().Err(envErr).Msg("dotenv not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := assets.NewFetcher(assets.Options{
		Timeout:   dataCfg.MayDuration("TIMEOUT", 15*time.Second),
		UserAgent: "folio",
		MaxBytes:  int64(dataCfg.MayInt("MAX_BYTES", 0)),
	})

	ds, err := dataset.Load(ctx, fetcher, dataset.SourcesFromConfig(dataCfg))
	if err != nil {
		l.Panic().Err(err).Msg("dataset load interrupted")
	}

	deps := modkit.Deps{Log: *l, Cfg: root, Assets: fetcher}
	ghUser := ghCfg.MayString("USER", "")
	if ghUser != "" {
		gh, err := github.NewClient(github.Options{
			Token:   ghCfg.MayString("TOKEN", ""),
			BaseURL: ghCfg.MayString("BASE_URL", ""),
			TTL:     ghCfg.MayDuration("TTL", 10*time.Minute),
		})
		if err != nil {
			l.Panic().Err(err).Msg("github client")
		}
		deps.GitHub = gh
	}

	var nav []domain.NavPage
	if p := webCfg.MayString("NAV_FILE", ""); p != "" {
		f, err := os.Open(p)
		if err != nil {
			l.Panic().Err(err).Str("file", p).Msg("nav file")
		}
		nav, err = domain.ParseNav(f)
		_ = f.Close()
		if err != nil {
			l.Panic().Err(err).Str("file", p).Msg("nav file")
		}
	}

	// http server (reads FOLIO_WEB_ADDR etc)
	slow := webCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond)
	srv := phttp.NewServer(webCfg, func(m *chi.Mux) {
		m.Use(middleware.Site(slow)...)
		m.Use(middleware.Heartbeat("/ping"))
	})

	// API first: the site reads the ports it registers
	api.Mount(srv.Router(), api.Options{
		Deps:    deps,
		Dataset: ds,
		CORS: middleware.CORSOptions{
			AllowedOrigins: webCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			MaxAge:         300,
		},
		GitHubUser:     ghUser,
		EnableSwagger:  webCfg.MayBool("SWAGGER", true),
		EnableProfiler: webCfg.MayBool("PROFILER", false),
	})

	sitemod.New(deps, sitemod.Options{
		BasePath:      webCfg.MayString("BASE_PATH", "/"),
		ContactAction: webCfg.MayString("CONTACT_ACTION", "mailto:hello@example.com"),
		GitHubUser:    ghUser,
		Nav:           nav,
		Dataset:       ds,
		ImagesDir:     webCfg.MayString("IMAGES_DIR", ""),
		Timeout:       webCfg.MayDuration("PAGE_TIMEOUT", 30*time.Second),
	}, modkit.WithMiddlewares(
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.SetHeader("Referrer-Policy", "same-origin"),
	)).MountRoutes(srv.Router())

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
