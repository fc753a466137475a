package notification

import "context"

//go:generate mockgen -package mocknotification -source=interface.go -destination=mock/mocknotification.go *

// Sender delivers local notifications on the current platform.
type Sender interface {
	// RequestPermission asks the platform for permission to show
	// notifications and reports whether it is granted.
	RequestPermission(ctx context.Context) (bool, error)
	// Send shows a notification immediately.
	Send(ctx context.Context, title, body string) error
}
