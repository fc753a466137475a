// Package main provides the CLI entrypoint for the Tunisia guide service.
// It wires subcommands (serve, migrate, search), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tunisiaguide/internal/config"
	"tunisiaguide/pkg/logger"
	"tunisiaguide/pkg/securestore"
	"tunisiaguide/pkg/securestore/memory"
	"tunisiaguide/pkg/securestore/sqlite"
)

const (
	storeDriverSQLite = "sqlite"
	storeDriverMemory = "memory"
)

// loadConfig reads the config file, falling back to defaults and environment
// variables when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("config file %s not found, using environment", path)

		return config.LoadEnv()
	}

	return config.Load(path)
}

// getStore opens the secure store configured in cfg, migrating the SQLite
// schema when a database file is used, and returns it along with a cleanup
// function.
func getStore(ctx context.Context, cfg *config.Config) (securestore.Store, func()) {
	switch cfg.Store.Driver {
	case storeDriverMemory:
		logger.Warn(ctx, "using the memory store, the session will not survive a restart")

		return memory.New(), func() {}
	case storeDriverSQLite:
	default:
		logger.Fatal(ctx, "unknown store driver", zap.String("driver", cfg.Store.Driver))
	}

	st, err := sqlite.Open(ctx, sqlite.Options{
		Path:        cfg.Store.Path,
		Secret:      cfg.Store.Secret,
		BusyTimeout: cfg.Store.BusyTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not open secure store", zap.Error(err))
	}
	if err := migrate(ctx, st); err != nil {
		logger.Fatal(ctx, "could not migrate secure store", zap.Error(err))
	}

	return st, func() {
		logger.Info(ctx, "closing secure store...")
		if err := st.Close(); err != nil {
			logger.Warn(ctx, "could not close secure store", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	// filled by the persistent pre-run hook before any subcommand runs
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:          "tunisiaguide",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err //nolint: wrapcheck
			}

			log.Println("loading config ...")
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			return logger.Setup(cfg.Environment, cfg.LogLevel) //nolint: wrapcheck
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		searchCommand(),
	)

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
