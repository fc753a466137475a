package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tunisiaguide/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
		wantErr     bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production", environment: logger.ProductionEnvironment, wantDebug: false},
		{name: "production at debug", environment: logger.ProductionEnvironment, level: "debug", wantDebug: true},
		{name: "development at warn", environment: logger.DevelopmentEnvironment, level: "warn", wantDebug: false},
		{name: "bad level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	require.NotNil(t, logger.Get(context.Background()))
}

func TestWithLogger(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFieldsAttachesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("userId", "u-1"))

	logger.Info(ctx, "logged in")
	logger.Warn(ctx, "storage slow")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "logged in", entries[0].Message)
	require.Equal(t, "u-1", entries[0].ContextMap()["userId"])
	require.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestLoggingFunctionsDoNotPanic(t *testing.T) {
	ctx := context.Background()
	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message")
		logger.Warn(ctx, "warn message")
		logger.Error(ctx, "error message")
		logger.Sync()
	})
}
