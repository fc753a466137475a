package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tunisiaguide/internal/api"
	"tunisiaguide/internal/api/handler/v1handler"
	"tunisiaguide/internal/catalog"
	"tunisiaguide/internal/config"
	"tunisiaguide/internal/notification"
	"tunisiaguide/internal/session"
	"tunisiaguide/pkg/logger"
	"tunisiaguide/pkg/metrics"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Restores the session and starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, closeStore := getStore(ctx, cfg)
			defer closeStore()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			cat, err := catalog.New()
			if err != nil {
				logger.Fatal(ctx, "could not load catalog", zap.Error(err))
			}

			notifs := notification.New(store, notification.LogSender{})
			notifs.Load(ctx)

			sessions, err := session.New(store, notifs, mp.Meter("tunisiaguide/session"), session.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create session manager", zap.Error(err))
			}
			sessions.Restore(ctx)
			if u, ok := sessions.Current(); ok {
				logger.Info(ctx, "signed in from a previous run", zap.String("email", u.Email))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Catalog:       cat,
				Sessions:      sessions,
				Notifications: notifs,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
