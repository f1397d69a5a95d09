package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/dangerclosesec/cscm/internal/watch"
	"github.com/spf13/cobra"
)

var watchOutput string

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output file (default: input with the output extension, - for stdout)")
}

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Recompile a file whenever it changes",
	Long:  `Compile a source file, then recompile it every time it is saved. Failures are logged and watching continues.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		path := args[0]
		dest := outputPath(path, watchOutput, a.cfg.Output.Extension)

		w, err := watch.New(path, watch.DefaultDebounce, a.logger)
		if err != nil {
			return err
		}
		defer w.Close()

		rebuild := func(string) {
			if err := compileFile(cmd, a, path, dest, model.OriginWatch); err != nil {
				a.logger.Error("Compilation failed", "path", path, "error", err)
				return
			}
			a.logger.Info("Compiled", "path", path, "output", dest)
		}
		rebuild(path)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		a.logger.Info("Watching for changes", "path", w.Path())
		if err := w.Run(ctx, rebuild); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
