package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"minilang/internal/project"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadFullManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"
entry = "src/main.mini"

[build]
output = "out/main.mlb"
jobs = 4
max-diagnostics = 32
`)
	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "demo" || m.Entry != "src/main.mini" {
		t.Errorf("package section = %+v", m)
	}
	if m.Jobs != 4 || m.MaxDiagnostics != 32 {
		t.Errorf("build section = %+v", m)
	}
	wantEntry := filepath.Join(filepath.Dir(path), "src", "main.mini")
	if got := m.EntryPath(path); got != wantEntry {
		t.Errorf("EntryPath = %q, want %q", got, wantEntry)
	}
	wantOut := filepath.Join(filepath.Dir(path), "out", "main.mlb")
	if got := m.OutputPath(path); got != wantOut {
		t.Errorf("OutputPath = %q, want %q", got, wantOut)
	}
}

func TestLoadMinimalManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
entry = "main.mini"
`)
	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Jobs != 0 || m.MaxDiagnostics != 0 || m.Output != "" {
		t.Errorf("defaults not zero: %+v", m)
	}
	if m.OutputPath(path) != "" {
		t.Error("OutputPath for empty output is not empty")
	}
}

func TestLoadRejectsMissingEntry(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"
`)
	_, err := project.Load(path)
	if !errors.Is(err, project.ErrEntryMissing) {
		t.Errorf("err = %v, want ErrEntryMissing", err)
	}
}

func TestLoadRejectsMissingPackage(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[build]
jobs = 2
`)
	_, err := project.Load(path)
	if !errors.Is(err, project.ErrPackageSectionMissing) {
		t.Errorf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestLoadRejectsAbsoluteEntry(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
entry = "/etc/main.mini"
`)
	if _, err := project.Load(path); err == nil {
		t.Error("absolute entry accepted")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nentry = \"main.mini\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := project.FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("manifest found at %q, want under %q", path, root)
	}

	gotRoot, ok, err := project.FindProjectRoot(nested)
	if err != nil || !ok || gotRoot != root {
		t.Errorf("project root = %q ok=%v err=%v, want %q", gotRoot, ok, err, root)
	}
}
