package domain

import "github.com/google/uuid"

// UserID uniquely identifies a session user.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// NewUserID generates a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses the canonical string form of a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err //nolint: wrapcheck
	}

	return UserID(id), nil
}

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes id in its canonical string form.
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText parses the canonical string form of a UserID.
func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := ParseUserID(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

// IsZero reports whether id is the zero UUID.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// User is the authenticated user of the current session.
type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// Avatar is an optional image URI; empty means none.
	Avatar string `json:"avatar,omitempty"`
}

// Valid reports whether u carries the fields every persisted user must have.
// Name may be empty: logging in as "@example.com" derives an empty name.
func (u User) Valid() bool {
	return !u.ID.IsZero() && u.Email != ""
}

// UserUpdate is a partial User used by profile updates. Nil fields are left
// untouched; the id is never updatable.
type UserUpdate struct {
	Email  *string
	Name   *string
	Avatar *string
}

// Apply returns u with every non-nil field of upd overwritten.
func (upd UserUpdate) Apply(u User) User {
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}

	return u
}

// IsEmpty reports whether upd changes nothing.
func (upd UserUpdate) IsEmpty() bool {
	return upd.Email == nil && upd.Name == nil && upd.Avatar == nil
}
