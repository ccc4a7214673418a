package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default("/plugin")
	if got, want := cfg.Source(), filepath.Join("/plugin", "upstream", "commands", "conductor"); got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}
	if got, want := cfg.Target(), filepath.Join("/plugin", "commands"); got != want {
		t.Errorf("Target() = %q, want %q", got, want)
	}
}

func TestAbsoluteOverride(t *testing.T) {
	abs := t.TempDir()
	cfg := Default("/plugin")
	cfg.TargetDir = abs
	if got := cfg.Target(); got != abs {
		t.Errorf("Target() = %q, want %q", got, abs)
	}
}

func TestEmptyDirFallsBackToDefault(t *testing.T) {
	cfg := Config{Root: "/plugin"}
	if got, want := cfg.Source(), filepath.Join("/plugin", "upstream", "commands", "conductor"); got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}
}

func TestFindRoot_Manifest(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, ".claude-plugin"))
	if err := os.WriteFile(filepath.Join(root, ".claude-plugin", "plugin.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "scripts", "deep")
	mkdirAll(t, nested)

	if got := FindRoot(nested); got != root {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}

func TestFindRoot_SourceDir(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, "upstream", "commands", "conductor"))
	nested := filepath.Join(root, "scripts")
	mkdirAll(t, nested)

	if got := FindRoot(nested); got != root {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	start := t.TempDir()
	if got := FindRoot(start); got != start {
		t.Errorf("FindRoot() = %q, want %q", got, start)
	}
}

func mkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
}
