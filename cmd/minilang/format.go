package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minilang/internal/driver"
	"minilang/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.mini",
	Short: "Print the canonical form of a MiniLang source file",
	Long: `Fmt reprints the file from its syntax tree: четыре пробела
отступа, минимальные скобки. С -w переписывает файл на месте`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite the file instead of printing")
	fmtCmd.Flags().Bool("check-roundtrip", false, "verify the printed form parses back to the same tree")
}

func runFmt(cmd *cobra.Command, args []string) error {
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

	checkRT, err := cmd.Flags().GetBool("check-roundtrip")
	if err != nil {
		return fmt.Errorf("failed to get check-roundtrip flag: %w", err)
	}
	if checkRT {
		if ok, msg := format.CheckRoundTrip(result.File, format.Options{}, maxDiag); !ok {
			return fmt.Errorf("round trip failed: %s", msg)
		}
	}

	out, err := format.PrintFile(result.Builder, result.FileID, format.Options{})
	if err != nil {
		return err
	}

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	if write {
		return os.WriteFile(args[0], out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}
