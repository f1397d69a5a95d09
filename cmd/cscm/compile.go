package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/dangerclosesec/cscm/internal/service"
	"github.com/spf13/cobra"
)

var outputFile string

func init() {
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: input with the output extension, - for stdout)")
}

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a source file",
	Long:  `Compile a single-function source file into a Scheme program. Nothing is written if compilation fails.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		return compileFile(cmd, a, args[0], outputPath(args[0], outputFile, a.cfg.Output.Extension), model.OriginCLI)
	},
}

// compileFile compiles path and writes the program to dest, or stdout when
// dest is "-"
func compileFile(cmd *cobra.Command, a *app, path, dest, origin string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := a.compiler.Compile(cmd.Context(), service.CompileInput{
		Source: string(src),
		Name:   path,
	}, origin, nil)
	if err != nil {
		return fmt.Errorf("%s:%w", path, err)
	}

	if dest == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out.Output)
		return err
	}
	if err := os.WriteFile(dest, []byte(out.Output), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	a.logger.Debug("wrote output", "path", dest, "bytes", len(out.Output))
	return nil
}

// outputPath picks the destination for input: explicit wins, otherwise the
// input's extension is replaced with ext
func outputPath(input, explicit, ext string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
