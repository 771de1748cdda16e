package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI mounts a versioned subtree at /api/{version}. Routes outside
// the subtree stay unversioned, probes and debug handlers typically live
// there
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.TrimPrefix(version, "/"), mw, mount)
}

// MountAPIV1 pins MountAPI to v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
