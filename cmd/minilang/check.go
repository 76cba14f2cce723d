package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"minilang/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.mini]",
	Short: "Type-check a MiniLang source file",
	Long: `Check resolves names and types in every function.
Без аргумента берёт entry из ближайшего minilang.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolveEntry(args)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Check(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return reportDiagnostics(cmd, result.Bag, result.Parse.FileSet)
}
