// Package config reads typed application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"devpulse/internal/platform/logger"
)

// Conf is a prefixed view over env vars. The root view has no prefix,
// Prefix("GITHUB_") scopes a child to one subsystem
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix returns a child view, prefixes compose left to right
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// value returns the composed key and its trimmed env value
func (c Conf) value(key string) (string, string) {
	k := c.prefix + key
	return k, strings.TrimSpace(os.Getenv(k))
}

// MayString returns the trimmed value or def when unset
func (c Conf) MayString(key, def string) string {
	if _, v := c.value(key); v != "" {
		return v
	}
	return def
}

// MayInt parses an integer, warning and falling back to def on junk
func (c Conf) MayInt(key string, def int) int {
	k, v := c.value(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}

// MayBool parses a bool the strconv way, falling back to def on junk
func (c Conf) MayBool(key string, def bool) bool {
	k, v := c.value(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", v).Msg("not a bool, using default")
		return def
	}
	return b
}

// MayDuration parses a time.Duration, falling back to def on junk
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	k, v := c.value(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Get().Warn().Str("key", k).Str("value", v).Msg("not a duration, using default")
		return def
	}
	return d
}

// MayPort returns a listen address like ":4000". def is the bare port
// used when the key is unset. An out of range port panics because the
// process cannot listen anyway
func (c Conf) MayPort(key, def string) string {
	k, v := c.value(key)
	if v == "" {
		v = def
	}
	v = strings.TrimPrefix(v, ":")
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", k).Str("value", v).Msg("port must be 1..65535")
	}
	return ":" + v
}
