// Package module defines the mountable module contract and the port
// registry used to wire modules together during bootstrap
package module

import (
	"reflect"

	phttp "devpulse/internal/platform/net/http"
)

// Module is what the api mount expects from a vertical slice
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// PortsOf extracts an interface T from a module's Ports() bundle.
// The bundle may implement T directly or carry it in an exported
// struct field, whichever the module chose
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if v, ok := bundle.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(bundle)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
