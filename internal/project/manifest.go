// Package project reads the optional minilang.toml manifest: входной
// файл и настройки сборки, чтобы 'minilang build' в корне проекта
// работал без аргументов.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the CLI looks for from the working directory up.
const ManifestName = "minilang.toml"

// Manifest describes a minilang.toml [package] plus [build] sections.
type Manifest struct {
	// Name is the package name, informational only.
	Name string
	// Entry is the source file to compile, relative to the manifest.
	Entry string
	// Output — куда класть артефакт ('minilang build'); относительный
	// путь от манифеста. Пусто — артефакт не пишется.
	Output string
	// Jobs caps check/lower parallelism; 0 keeps the CLI default.
	Jobs int
	// MaxDiagnostics caps the diagnostic bag; 0 keeps the CLI default.
	MaxDiagnostics int
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrEntryMissing indicates that [package].entry is missing or empty.
	ErrEntryMissing = errors.New("missing [package].entry")
)

type manifestFile struct {
	Package struct {
		Name  string `toml:"name"`
		Entry string `toml:"entry"`
	} `toml:"package"`
	Build struct {
		Output         string `toml:"output"`
		Jobs           int    `toml:"jobs"`
		MaxDiagnostics int    `toml:"max-diagnostics"`
	} `toml:"build"`
}

// Load parses a minilang.toml manifest.
func Load(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	entry := strings.TrimSpace(cfg.Package.Entry)
	if !meta.IsDefined("package", "entry") || entry == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrEntryMissing)
	}
	if filepath.IsAbs(entry) {
		return Manifest{}, fmt.Errorf("%s: invalid [package].entry %q: must be relative", path, entry)
	}
	if cfg.Build.Jobs < 0 {
		return Manifest{}, fmt.Errorf("%s: invalid [build].jobs %d", path, cfg.Build.Jobs)
	}
	if cfg.Build.MaxDiagnostics < 0 {
		return Manifest{}, fmt.Errorf("%s: invalid [build].max-diagnostics %d", path, cfg.Build.MaxDiagnostics)
	}
	return Manifest{
		Name:           strings.TrimSpace(cfg.Package.Name),
		Entry:          entry,
		Output:         strings.TrimSpace(cfg.Build.Output),
		Jobs:           cfg.Build.Jobs,
		MaxDiagnostics: cfg.Build.MaxDiagnostics,
	}, nil
}

// EntryPath returns the entry file resolved against the manifest location.
func (m Manifest) EntryPath(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(m.Entry))
}

// OutputPath resolves [build].output the same way; пусто так и остаётся.
func (m Manifest) OutputPath(manifestPath string) string {
	if m.Output == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(m.Output))
}
