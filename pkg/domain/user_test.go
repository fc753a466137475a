package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"tunisiaguide/pkg/domain"
)

func TestUserID_Text(t *testing.T) {
	id, err := domain.ParseUserID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)

	data, err := json.Marshal(domain.User{ID: id, Email: "demo@tunisia.com", Name: "demo"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","email":"demo@tunisia.com","name":"demo"}`, string(data))

	var u domain.User
	require.NoError(t, json.Unmarshal(data, &u))
	require.Equal(t, id, u.ID)

	require.Error(t, json.Unmarshal([]byte(`{"id":"1700000000000"}`), &u))
}

func TestUserUpdate_Apply(t *testing.T) {
	u := domain.User{ID: domain.NewUserID(), Email: "demo@tunisia.com", Name: "demo", Avatar: "a.jpeg"}
	name := "Demo"

	got := domain.UserUpdate{Name: &name}.Apply(u)
	require.Equal(t, "Demo", got.Name)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.Avatar, got.Avatar)
	require.Equal(t, u.ID, got.ID)
	require.True(t, domain.UserUpdate{}.IsEmpty())
}
