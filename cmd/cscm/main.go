package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dangerclosesec/cscm"
	"github.com/dangerclosesec/cscm/internal/config"
	"github.com/dangerclosesec/cscm/internal/repository"
	"github.com/dangerclosesec/cscm/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:           "cscm",
	Short:         "cscm compiles a tiny C subset to Scheme",
	Long:          `cscm translates a single C-like function into an S-expression program.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds everything a command needs once configuration is loaded
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	db         *gorm.DB
	logService *service.CompilationLogService
	compiler   *service.CompilerService
}

// newApp loads configuration, sets up logging and, when a DSN is
// configured, opens the history database.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(configPath, os.Getenv)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger := newLogger(logOut, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}

	var repo repository.CompilationRepositoryIface
	if cfg.Database.DSN != "" {
		db, err := setupDatabase(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("setting up database: %w", err)
		}
		a.db = db
		repo = repository.NewCompilationRepository(db)
	}

	a.logService = service.NewCompilationLogService(repo)
	a.compiler = service.NewCompilerService(cfg, a.logService, logger)
	return a, nil
}

// compilerConfig returns root package settings matching the loaded config
func (a *app) compilerConfig() *cscm.Config {
	c := cscm.NewConfig()
	c.SetArenaSize(a.cfg.Arena.Size)
	c.SetPrint(a.cfg.Output.PrintAlias, a.cfg.Output.PrintPrimitive)
	c.SetLogger(a.logger)
	return c
}

func (a *app) Close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := repository.Open(cfg.Database.DSN, cfg.Log.Level == "debug")
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := repository.Migrate(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}
