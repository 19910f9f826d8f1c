package module

import (
	"folio/internal/core/scale"
	"folio/internal/services/api/meta/domain"
)

// Ports is what the meta module offers other modules
type Ports struct {
	Views  domain.ServicePort
	Colors *scale.Ordinal
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
