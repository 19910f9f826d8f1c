// Package api provides the JSON API for the site
package api

import (
	"context"

	"folio/internal/core/version"
	"folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/module"
	"folio/internal/modkit/swaggerkit"
	"folio/internal/platform/logger"
	phttp "folio/internal/platform/net/http"
	"folio/internal/platform/net/middleware"
	"folio/internal/services/dataset"

	metamod "folio/internal/services/api/meta/module"
	projmod "folio/internal/services/api/projects/module"
	syshttp "folio/internal/services/api/system/http"
	sysmod "folio/internal/services/api/system/module"
)

// Options are the API options
type Options struct {
	Deps           modkit.Deps
	Dataset        *dataset.Dataset
	CORS           middleware.CORSOptions
	GitHubUser     string
	EnableSwagger  bool
	EnableProfiler bool
}

// Modules builds the API modules. Their ports are registered by Mount
func Modules(opt Options) []module.Module {
	swag := modkit.WithSwagger(opt.EnableSwagger)
	return []module.Module{
		sysmod.New(opt.Deps, sysmod.Options{
			ServiceName: version.Service,
			Checks:      checks(opt),
			Order:       []string{"history", "projects", "github"},
		}, swag),
		metamod.New(opt.Deps, opt.Dataset, swag),
		projmod.New(opt.Deps, opt.Dataset, swag),
	}
}

// Mount mounts the API service onto the given router and registers each module's
// ports under its name
func Mount(r phttp.Router, opt Options) []module.Module {
	mods := Modules(opt)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.CORS), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	// Swagger + profiler live outside the versioned scope
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	logger.Named("api").Info().Int("modules", len(mods)).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
	return mods
}

func checks(opt Options) map[string]syshttp.Checker {
	out := map[string]syshttp.Checker{
		"history":  syshttp.CheckFunc(func(context.Context) error { return opt.Dataset.MetaReady() }),
		"projects": syshttp.CheckFunc(func(context.Context) error { return opt.Dataset.ProjectsReady() }),
		"github":   nil,
	}
	if gh := opt.Deps.GitHub; gh != nil && opt.GitHubUser != "" {
		out["github"] = syshttp.CheckFunc(func(ctx context.Context) error {
			_, err := gh.Profile(ctx, opt.GitHubUser)
			return err
		})
	}
	return out
}
