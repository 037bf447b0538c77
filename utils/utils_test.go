package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestContainsString(t *testing.T) {
	options := []string{"yes", "no"}

	if !ContainsString("YES", options) {
		t.Error("expected YES to match yes")
	}
	if ContainsString("maybe", options) {
		t.Error("maybe is not an option")
	}
	if ContainsString("yes", nil) {
		t.Error("nothing is contained in an empty slice")
	}
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatalf("error writing config: %v", err)
	}

	content, err := GetConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "log_level: debug\n" {
		t.Errorf("unexpected content %q", content)
	}

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
