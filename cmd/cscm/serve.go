package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dangerclosesec/cscm/internal/handler"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP compile API",
	Long:  `Serve POST /compile, GET /healthz and, when a database is configured, the compilation history endpoints.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), os.Stdout)
		if err != nil {
			return err
		}
		defer a.Close()

		port := a.cfg.Server.Port
		if servePort != "" {
			port = servePort
		}

		router := handler.NewRouter(handler.RouterConfig{
			Logger:         a.logger,
			Compile:        handler.NewCompileHandler(a.compiler, a.cfg.Server.MaxSourceBytes),
			CompilationLog: handler.NewCompilationLogHandler(a.logService),
			Timeout:        30 * time.Second,
		})

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           router,
			ReadTimeout:       a.cfg.Server.ReadTimeout,
			WriteTimeout:      a.cfg.Server.WriteTimeout,
			IdleTimeout:       120 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)

		go func() {
			a.logger.Info("server starting", "port", port, "history", a.logService.Enabled())
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			a.logger.Info("shutdown started", "signal", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}

		return nil
	},
}
