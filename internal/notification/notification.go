// Package notification keeps the user's notification preference and schedules
// local notifications through a platform Sender.
package notification

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"tunisiaguide/pkg/logger"
	"tunisiaguide/pkg/securestore"
)

// EnabledKey is the secure store key of the preference, stored as "true" or "false".
const EnabledKey = "notificationsEnabled"

// Service owns the notification preference. Notifications are disabled until
// Load finds a stored "true" or SetEnabled(true) is called.
type Service struct {
	store  securestore.Store
	sender Sender

	mu      sync.RWMutex
	enabled bool
}

func New(store securestore.Store, sender Sender) *Service {
	return &Service{
		store:  store,
		sender: sender,
	}
}

// Load reads the stored preference. Missing, unreadable or unparsable values
// leave notifications disabled.
func (s *Service) Load(ctx context.Context) {
	v, found, err := s.store.Get(ctx, EnabledKey)
	if err != nil {
		logger.Error(ctx, "could not load notification settings", zap.Error(err))

		return
	}
	if !found {
		return
	}

	enabled, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn(ctx, "ignoring malformed notification setting", zap.String("value", v))

		return
	}

	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

func (s *Service) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enabled
}

// SetEnabled updates and persists the preference. Enabling also asks the
// platform for permission. The in-memory value is kept when persisting fails.
func (s *Service) SetEnabled(ctx context.Context, enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()

	if err := s.store.Set(ctx, EnabledKey, strconv.FormatBool(enabled)); err != nil {
		logger.Error(ctx, "could not save notification settings", zap.Error(err))
	}

	if enabled {
		s.RequestPermission(ctx)
	}
}

// RequestPermission reports whether the platform allows notifications. A
// failing Sender counts as denied.
func (s *Service) RequestPermission(ctx context.Context) bool {
	granted, err := s.sender.RequestPermission(ctx)
	if err != nil {
		logger.Error(ctx, "could not request notification permission", zap.Error(err))

		return false
	}

	return granted
}

// Schedule shows a notification when notifications are enabled. Delivery
// failures are logged.
func (s *Service) Schedule(ctx context.Context, title, body string) {
	if !s.Enabled() {
		logger.Debug(ctx, "notifications disabled, dropping", zap.String("title", title))

		return
	}

	if err := s.sender.Send(ctx, title, body); err != nil {
		logger.Error(ctx, "could not schedule notification", zap.Error(err), zap.String("title", title))
	}
}
