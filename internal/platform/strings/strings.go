// Package strings holds small string and slice helpers shared by the
// platform packages
package strings

import std "strings"

// IfEmpty substitutes def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with name when s is blank, otherwise returns it
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix canonicalizes a mount prefix: exactly one leading slash,
// no trailing slash. A blank prefix panics, the bare root never mounts
func MustPrefix(s string) string {
	trimmed := std.Trim(std.TrimSpace(s), "/ ")
	if trimmed == "" {
		panic("root path is required")
	}
	return "/" + trimmed
}

// FirstLine cuts s at the first newline and trims the remainder
func FirstLine(s string) string {
	line, _, _ := std.Cut(s, "\n")
	return std.TrimSpace(line)
}
