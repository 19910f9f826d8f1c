package modkit

import (
	"folio/internal/adapters/assets"
	"folio/internal/adapters/github"
	"folio/internal/platform/config"
	"folio/internal/platform/logger"
)

// Deps are the shared clients handed to every module. The zero value is usable in tests
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Assets *assets.Fetcher
	// GitHub is nil when no profile user is configured
	GitHub *github.Client
}
