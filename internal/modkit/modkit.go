// Package modkit wires API and site modules from shared deps and options
package modkit

import "folio/internal/modkit/module"

// Module is what main mounts: routes plus an optional port set for other modules
type Module = module.Module
