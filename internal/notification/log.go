package notification

import (
	"context"

	"go.uber.org/zap"

	"tunisiaguide/pkg/logger"
)

// LogSender writes notifications to the context logger. It always has
// permission, like browsers showing local notifications.
type LogSender struct{}

var _ Sender = LogSender{}

func (LogSender) RequestPermission(context.Context) (bool, error) { return true, nil }

func (LogSender) Send(ctx context.Context, title, body string) error {
	logger.Info(ctx, "notification", zap.String("title", title), zap.String("body", body))

	return nil
}
