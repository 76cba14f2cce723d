package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minilang/internal/driver"
	"minilang/internal/format"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mini",
	Short: "Parse a MiniLang source file",
	Long:  `Parse builds the syntax tree and reports the first syntax error, if any`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("print", false, "print the canonical form of the parsed file")
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiag, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}
	result, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := reportDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	doPrint, err := cmd.Flags().GetBool("print")
	if err != nil {
		return fmt.Errorf("failed to get print flag: %w", err)
	}
	if doPrint {
		out, err := format.PrintFile(result.Builder, result.FileID, format.Options{})
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	}
	return nil
}
