package module

import "sync"

// process wide registry of port bundles, written once during mount and
// read by modules that need a sibling's ports without importing it
var (
	regMu sync.RWMutex
	reg   = map[string]any{}
)

// Register stores the port bundle under the module name, overwriting
// any previous registration
func Register(name string, ports any) {
	regMu.Lock()
	defer regMu.Unlock()
	reg[name] = ports
}

// PortsAs looks up name and asserts the bundle to T
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, found := reg[name]
	regMu.RUnlock()

	var zero T
	if !found {
		return zero, false
	}
	out, ok := v.(T)
	if !ok {
		return zero, false
	}
	return out, true
}

// Reset empties the registry, for tests
func Reset() {
	regMu.Lock()
	defer regMu.Unlock()
	reg = map[string]any{}
}
