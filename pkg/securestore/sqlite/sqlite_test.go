package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tunisiaguide/pkg/securestore"
	"tunisiaguide/pkg/securestore/sqlite"
)

func openStore(t *testing.T, path, secret string) *sqlite.Store {
	t.Helper()

	s, err := sqlite.Open(context.Background(), sqlite.Options{
		Path:        path,
		Secret:      secret,
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(s.DB()))
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "guide.db"), "s3cret")

	_, found, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.Set(ctx, "user", `{"id":"a","email":"demo@tunisia.com","name":"demo"}`))
	require.NoError(t, s.Set(ctx, "notificationsEnabled", "true"))
	require.NoError(t, s.Set(ctx, "user", `{"id":"b","email":"x@y.z","name":"x"}`))

	v, found, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `{"id":"b","email":"x@y.z","name":"x"}`, v)

	v, found, err = s.Get(ctx, "notificationsEnabled")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "true", v)

	require.NoError(t, s.Delete(ctx, "user"))
	require.NoError(t, s.Delete(ctx, "user"))
	_, found, err = s.Get(ctx, "user")
	require.NoError(t, err)
	require.False(t, found)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "guide.db")

	first := openStore(t, path, "s3cret")
	require.NoError(t, first.Set(ctx, "user", "persisted"))
	require.NoError(t, first.Close())

	second := openStore(t, path, "s3cret")
	v, found, err := second.Get(ctx, "user")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "persisted", v)
}

func TestStore_ValuesAreEncrypted(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "guide.db"), "s3cret")
	require.NoError(t, s.Set(ctx, "user", "plain-marker"))

	var raw []byte
	require.NoError(t, s.DB().QueryRowContext(ctx,
		`SELECT value FROM secure_items WHERE key = ?`, "user").Scan(&raw))
	require.NotContains(t, string(raw), "plain-marker")
}

func TestStore_WrongSecretIsCorrupt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guide.db")

	s := openStore(t, path, "right")
	require.NoError(t, s.Set(ctx, "user", "value"))
	require.NoError(t, s.Close())

	other := openStore(t, path, "wrong")
	_, _, err := other.Get(ctx, "user")
	require.ErrorIs(t, err, securestore.ErrCorrupt)
}

func TestStore_SwappedCiphertextIsCorrupt(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "guide.db"), "s3cret")
	require.NoError(t, s.Set(ctx, "notificationsEnabled", "false"))

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO secure_items (key, value) SELECT 'user', value FROM secure_items WHERE key = 'notificationsEnabled'`)
	require.NoError(t, err)

	_, _, err = s.Get(ctx, "user")
	require.ErrorIs(t, err, securestore.ErrCorrupt)
}

func TestOpen_EmptySecret(t *testing.T) {
	_, err := sqlite.Open(context.Background(), sqlite.Options{Path: filepath.Join(t.TempDir(), "x.db")})
	require.Error(t, err)
}
