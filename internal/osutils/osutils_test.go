package osutils

import (
	"runtime"
	"testing"
)

func TestInjectionNote(t *testing.T) {
	note := InjectionNote()
	switch runtime.GOOS {
	case "darwin":
		if note == "" {
			t.Error("Expected an accessibility note on macOS")
		}
	case "windows":
		if IsAdmin() && note != "" {
			t.Errorf("Expected no note when elevated, got %q", note)
		}
	default:
		if note != "" {
			t.Errorf("Expected no note, got %q", note)
		}
	}
}
