// Package module defines the module contract and the port registry main wires through
package module

import (
	phttp "folio/internal/platform/net/http"
)

// Module mounts its routes and exposes a port set. Ports may be nil
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
