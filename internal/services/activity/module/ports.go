package module

import (
	"devpulse/internal/services/activity/domain"
)

// Ports bundles the port set this module registers for cross wiring
type Ports struct {
	Activity domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
