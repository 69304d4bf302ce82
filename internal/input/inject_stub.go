//go:build !windows && !darwin

package input

import (
	"runtime"
)

// Stub implementation for platforms without a pointer injection facility

func sendInput(events []MouseEvent) (int, error) {
	return 0, &InjectionError{Reason: "pointer injection not supported on " + runtime.GOOS}
}
