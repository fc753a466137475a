// Package session implements the mock authentication flow of the guide: a
// single session that is created by Login or Register, survives restarts
// through the secure store and ends with Logout.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"tunisiaguide/internal/config"
	"tunisiaguide/pkg/clock"
	"tunisiaguide/pkg/domain"
	"tunisiaguide/pkg/logger"
	"tunisiaguide/pkg/securestore"
)

const (
	// UserKey is the secure store key holding the serialized session user.
	UserKey = "user"

	DefaultDelay             = time.Second
	DefaultMinPasswordLength = 6

	meterName = "tunisiaguide/internal/session"
)

// Outcome is the result of a Login or Register attempt. It is also the
// outcome attribute of the attempt counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid"
	// OutcomeBusy is returned while another attempt waits out its delay.
	OutcomeBusy Outcome = "busy"
	// OutcomeNotReady is returned before Restore has settled the session.
	OutcomeNotReady Outcome = "not_ready"
)

// Notifier schedules local notifications. It is satisfied by
// *notification.Service.
type Notifier interface {
	Schedule(ctx context.Context, title, body string)
}

// Options configure the authentication flow.
type Options struct {
	// Delay is waited by every Login and Register call before credentials
	// are checked. Zero means DefaultDelay.
	Delay time.Duration
	// MinPasswordLength is counted in characters. Zero means DefaultMinPasswordLength.
	MinPasswordLength int
	// AvatarURL is given to every new user.
	AvatarURL string
	// WelcomeTitle and WelcomeBody make up the notification sent when a
	// session is created. No notification is sent when both are empty.
	WelcomeTitle string
	WelcomeBody  string
	// Clock times the delay. Nil means clock.Real().
	Clock clock.Clock
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Delay:             cfg.Session.Delay,
		MinPasswordLength: cfg.Session.MinPasswordLength,
		AvatarURL:         cfg.Session.AvatarURL,
		WelcomeTitle:      cfg.Notifications.WelcomeTitle,
		WelcomeBody:       cfg.Notifications.WelcomeBody,
		Clock:             clock.Real(),
	}
}

// Manager owns the session. Storage failures never reach callers: they are
// logged and the in-memory session stays authoritative until the process exits.
type Manager struct {
	options  Options
	store    securestore.Store
	notifier Notifier

	loginAttempts    metric.Int64Counter
	registerAttempts metric.Int64Counter

	// busy is set while a Login or Register call is in flight.
	busy atomic.Bool
	// write serializes state changes with the store write that follows them,
	// so the stored record always matches the last change.
	write sync.Mutex

	mu    sync.RWMutex
	state State
	user  *domain.User
}

// New returns a Manager in StateLoading; call Restore once to settle it.
// notifier and meter may be nil.
func New(store securestore.Store, notifier Notifier, meter metric.Meter, options Options) (*Manager, error) {
	if options.Delay == 0 {
		options.Delay = DefaultDelay
	}
	if options.MinPasswordLength <= 0 {
		options.MinPasswordLength = DefaultMinPasswordLength
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(meterName)
	}

	loginAttempts, err := meter.Int64Counter("session.login.attempts",
		metric.WithDescription("Login attempts by outcome."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	registerAttempts, err := meter.Int64Counter("session.register.attempts",
		metric.WithDescription("Registration attempts by outcome."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Manager{
		options:          options,
		store:            store,
		notifier:         notifier,
		loginAttempts:    loginAttempts,
		registerAttempts: registerAttempts,
		state:            StateLoading,
	}, nil
}

// Restore loads the stored session. An absent, unreadable or malformed record
// leaves the manager unauthenticated. Only the first call has an effect.
func (m *Manager) Restore(ctx context.Context) {
	m.write.Lock()
	defer m.write.Unlock()

	if m.State() != StateLoading {
		logger.Debug(ctx, "session already restored")

		return
	}

	user, found := m.load(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if found {
		m.user = &user
		m.state = StateAuthenticated
		logger.Info(ctx, "session restored", zap.Stringer("user_id", user.ID))

		return
	}
	m.state = StateUnauthenticated
}

func (m *Manager) load(ctx context.Context) (domain.User, bool) {
	raw, found, err := m.store.Get(ctx, UserKey)
	switch {
	case errors.Is(err, securestore.ErrCorrupt):
		logger.Warn(ctx, "discarding unreadable session record", zap.Error(err))

		return domain.User{}, false
	case err != nil:
		logger.Error(ctx, "could not load stored session", zap.Error(err))

		return domain.User{}, false
	case !found:
		return domain.User{}, false
	}

	user, err := decodeUser(raw)
	if err != nil {
		logger.Warn(ctx, "discarding malformed session record", zap.Error(err))

		return domain.User{}, false
	}

	return user, true
}

// Login creates a session for email after the configured delay. The user's
// name is the part of email before "@". It returns false for an empty email,
// a password shorter than MinPasswordLength, before Restore, or when another
// Login or Register call is in flight.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	return m.AttemptLogin(ctx, email, password) == OutcomeSuccess
}

// AttemptLogin is Login reporting why an attempt failed.
func (m *Manager) AttemptLogin(ctx context.Context, email, password string) Outcome {
	ctx = logger.WithFields(ctx, zap.String("op", "login"))

	return m.authenticate(ctx, m.loginAttempts, func() (domain.User, bool) {
		if !m.validCredentials(email, password) {
			return domain.User{}, false
		}
		name, _, _ := strings.Cut(email, "@")

		return m.newUser(email, name), true
	})
}

// Register behaves like Login but also requires a non-empty name, which is
// used as given.
func (m *Manager) Register(ctx context.Context, email, password, name string) bool {
	return m.AttemptRegister(ctx, email, password, name) == OutcomeSuccess
}

// AttemptRegister is Register reporting why an attempt failed.
func (m *Manager) AttemptRegister(ctx context.Context, email, password, name string) Outcome {
	ctx = logger.WithFields(ctx, zap.String("op", "register"))

	return m.authenticate(ctx, m.registerAttempts, func() (domain.User, bool) {
		if !m.validCredentials(email, password) || name == "" {
			return domain.User{}, false
		}

		return m.newUser(email, name), true
	})
}

func (m *Manager) authenticate(ctx context.Context,
	attempts metric.Int64Counter,
	build func() (domain.User, bool)) Outcome {
	if !m.busy.CompareAndSwap(false, true) {
		logger.Warn(ctx, "rejecting authentication while another is in flight")
		attempts.Add(ctx, 1, withOutcome(OutcomeBusy))

		return OutcomeBusy
	}
	defer m.busy.Store(false)

	m.mu.Lock()
	prev := m.state
	if prev == StateLoading {
		// leaving Loading here would turn the later Restore into a no-op
		m.mu.Unlock()
		logger.Warn(ctx, "rejecting authentication before the session is restored")
		attempts.Add(ctx, 1, withOutcome(OutcomeNotReady))

		return OutcomeNotReady
	}
	m.state = StateAuthenticating
	m.mu.Unlock()

	// not cancellable: an attempt always runs to completion
	<-m.options.Clock.After(m.options.Delay)

	user, ok := build()
	if !ok {
		m.mu.Lock()
		if m.state == StateAuthenticating {
			m.state = prev
		}
		m.mu.Unlock()
		attempts.Add(ctx, 1, withOutcome(OutcomeInvalid))
		logger.Debug(ctx, "credentials rejected")

		return OutcomeInvalid
	}

	m.write.Lock()
	m.mu.Lock()
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()
	m.persist(ctx, user)
	m.write.Unlock()

	attempts.Add(ctx, 1, withOutcome(OutcomeSuccess))
	logger.Info(ctx, "session created", zap.Stringer("user_id", user.ID))

	if m.notifier != nil && (m.options.WelcomeTitle != "" || m.options.WelcomeBody != "") {
		m.notifier.Schedule(ctx, m.options.WelcomeTitle, m.options.WelcomeBody)
	}

	return OutcomeSuccess
}

func (m *Manager) validCredentials(email, password string) bool {
	return email != "" && utf8.RuneCountInString(password) >= m.options.MinPasswordLength
}

func (m *Manager) newUser(email, name string) domain.User {
	return domain.User{
		ID:     domain.NewUserID(),
		Email:  email,
		Name:   name,
		Avatar: m.options.AvatarURL,
	}
}

// Logout ends the session and deletes the stored record. It is safe to call
// without a session.
func (m *Manager) Logout(ctx context.Context) {
	m.write.Lock()
	defer m.write.Unlock()

	m.mu.Lock()
	hadUser := m.user != nil
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.store.Delete(ctx, UserKey); err != nil {
		logger.Error(ctx, "could not delete stored session", zap.Error(err))
	}
	if hadUser {
		logger.Info(ctx, "session ended")
	}
}

// UpdateProfile overwrites the fields set in upd and stores the whole user
// again. Without a session it does nothing.
func (m *Manager) UpdateProfile(ctx context.Context, upd domain.UserUpdate) {
	m.write.Lock()
	defer m.write.Unlock()

	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		logger.Debug(ctx, "ignoring profile update without a session")

		return
	}
	user := upd.Apply(*m.user)
	m.user = &user
	m.mu.Unlock()

	m.persist(ctx, user)
}

func (m *Manager) persist(ctx context.Context, user domain.User) {
	if err := m.store.Set(ctx, UserKey, encodeUser(user)); err != nil {
		logger.Error(ctx, "could not persist session, it will not survive a restart",
			zap.Error(err), zap.Stringer("user_id", user.ID))
	}
}

// Current returns the session user, if any.
func (m *Manager) Current() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return domain.User{}, false
	}

	return *m.user, true
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// IsLoading reports whether Restore has not settled the session yet.
func (m *Manager) IsLoading() bool {
	return m.State() == StateLoading
}

func withOutcome(outcome Outcome) metric.AddOption {
	return metric.WithAttributes(attribute.String("outcome", string(outcome)))
}
