package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslateLegacyArgs(t *testing.T) {
	got := translateLegacyArgs([]string{"clicks.txt", "/DEBUG", "/?", "--pause"})
	want := []string{"clicks.txt", "--debug", "--help", "--pause"}

	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Arg %d: expected '%s', got '%s'", i, want[i], got[i])
		}
	}
}

func TestHelpShowsFormat(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(translateLegacyArgs([]string{"/?"}))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "wait <msec>") {
		t.Errorf("Expected usage info to describe the file format, got:\n%s", out.String())
	}
}

func TestRunMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "missing.txt"),
	})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected a file not found error, got %v", err)
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path, "--init-config", "--debug"})
	t.Cleanup(func() { writeConfig, debug = false, false })

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected config file to be written: %v", err)
	}
	if !strings.Contains(string(data), "debug = true") {
		t.Errorf("Expected debug to be saved, got:\n%s", data)
	}
}
