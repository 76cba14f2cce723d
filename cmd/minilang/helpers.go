package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minilang/internal/diag"
	"minilang/internal/diagfmt"
	"minilang/internal/driver"
	"minilang/internal/project"
	"minilang/internal/source"
)

// errCompilationFailed сигнализирует cobra о ненулевом коде выхода;
// диагностики уже напечатаны, дублировать их в err не нужно.
var errCompilationFailed = errors.New("compilation failed")

func maxDiagnosticsFlag(cmd *cobra.Command) (int, error) {
	v, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return v, nil
}

func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiag, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return driver.Options{}, err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	return driver.Options{MaxDiagnostics: maxDiag, Jobs: jobs}, nil
}

// useColor решает по флагу --color и типу потока, красить ли вывод.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// reportDiagnostics печатает мешок в stderr и возвращает
// errCompilationFailed, если в нём есть ошибки.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		if err := diagfmt.Pretty(os.Stderr, bag, fs, opts); err != nil {
			return err
		}
	}
	if bag.HasErrors() {
		return errCompilationFailed
	}
	return nil
}

// resolveEntry возвращает путь к исходнику: явный аргумент, иначе
// entry из ближайшего minilang.toml.
func resolveEntry(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifestPath, ok, err := project.FindManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no input file and no %s found", project.ManifestName)
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return "", err
	}
	return manifest.EntryPath(manifestPath), nil
}
