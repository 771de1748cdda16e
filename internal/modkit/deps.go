// Package modkit provides module wiring and the shared dependency bundle
package modkit

import (
	"devpulse/internal/adapters/github"
	"devpulse/internal/platform/config"
	"devpulse/internal/platform/logger"
)

// Deps is handed to every module at construction. Cfg is a root view,
// modules narrow it with their own prefix
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	GitHub *github.Client
}
