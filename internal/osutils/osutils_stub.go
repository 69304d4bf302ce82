//go:build !windows

// Package osutils provides host checks used by the CLI.
package osutils

import "runtime"

// IsAdmin is a stub for non-Windows platforms
func IsAdmin() bool {
	return false
}

// InjectionNote describes host restrictions on synthetic input, empty when
// there are none worth reporting.
func InjectionNote() string {
	if runtime.GOOS == "darwin" {
		return "the terminal needs Accessibility permission (System Settings > Privacy & Security) to inject input"
	}
	return ""
}
