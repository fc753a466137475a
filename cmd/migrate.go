package main

import (
	"context"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tunisiaguide/internal/config"
	"tunisiaguide/pkg/logger"
	"tunisiaguide/pkg/securestore/sqlite"
)

// gooseLogger routes goose output through zap.
type gooseLogger struct {
	l *zap.SugaredLogger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}

func migrate(ctx context.Context, st *sqlite.Store) error {
	goose.SetLogger(gooseLogger{l: logger.Get(ctx).Sugar()})

	return sqlite.Migrate(st.DB()) //nolint: wrapcheck
}

// migrateCommand constructs the 'migrate' subcommand that applies the secure
// store migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the secure store database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			if cfg.Store.Driver != storeDriverSQLite {
				logger.Info(ctx, "store is not a database, nothing to migrate", zap.String("driver", cfg.Store.Driver))

				return
			}

			// getStore migrates on open
			_, closeStore := getStore(ctx, cfg)
			defer closeStore()

			logger.Info(ctx, "secure store is up to date", zap.String("path", cfg.Store.Path))
		},
	}

	return cmd
}
