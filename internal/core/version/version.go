// Package version reports what build of the service is running
package version

// set at build time, for example:
//
//	go build -ldflags "-X 'devpulse/internal/core/version.version=v0.2.0' \
//	  -X 'devpulse/internal/core/version.commit=abc1234' \
//	  -X 'devpulse/internal/core/version.date=2026-08-27'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is what /healthz returns
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info snapshots the build identity
func Info() BuildInfo {
	return BuildInfo{
		Service: "devpulse-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
