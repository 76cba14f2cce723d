package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minilang/internal/driver"
	"minilang/internal/interp"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.mini]",
	Short: "Compile and execute a MiniLang program",
	Long: `Run compiles the program, executes main and prints its exit code.
Артефакты .mlbc запускаются без перекомпиляции`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	path, err := resolveEntry(args)
	if err != nil {
		return err
	}

	var result *interp.Result
	if strings.HasSuffix(path, ".mlbc") {
		module, err := driver.ReadArtifact(path)
		if err != nil {
			return fmt.Errorf("failed to load artifact: %w", err)
		}
		result, err = interp.Run(module, interp.Options{Stdout: os.Stdout})
		if err != nil {
			return err
		}
	} else {
		opts, err := driverOptions(cmd)
		if err != nil {
			return err
		}
		build, err := driver.Build(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
		if err := reportDiagnostics(cmd, build.Bag, build.Parse.FileSet); err != nil {
			return err
		}
		result, err = interp.Run(build.Module, interp.Options{Stdout: os.Stdout})
		if err != nil {
			return err
		}
	}

	fmt.Printf("\n=== Program exited with code %s ===\n", result.Exit.Text())
	return nil
}
