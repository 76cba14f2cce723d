package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minilang/internal/driver"
	"minilang/internal/mir"
	"minilang/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.mini]",
	Short: "Compile a MiniLang source file to IR",
	Long: `Build runs the whole front end and lowers the program to IR.
С -o пишет msgpack-артефакт, с --dump печатает текстовую форму IR.
Без аргумента берёт entry из ближайшего minilang.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "write the compiled artifact to this path")
	buildCmd.Flags().Bool("dump", false, "print the lowered IR to stdout")
}

func runBuild(cmd *cobra.Command, args []string) error {
	path, err := resolveEntry(args)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Build(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if err := reportDiagnostics(cmd, result.Bag, result.Parse.FileSet); err != nil {
		return err
	}

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}
	if dump {
		if err := mir.DumpModule(os.Stdout, result.Module); err != nil {
			return err
		}
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if output == "" && len(args) == 0 {
		// сборка из манифеста использует его [build].output
		if manifestPath, ok, ferr := project.FindManifest("."); ferr == nil && ok {
			if manifest, lerr := project.Load(manifestPath); lerr == nil {
				output = manifest.OutputPath(manifestPath)
			}
		}
	}
	if output != "" {
		if err := driver.WriteArtifact(output, result.Module); err != nil {
			return fmt.Errorf("failed to write artifact: %w", err)
		}
	}
	return nil
}
