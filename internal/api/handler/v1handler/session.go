package v1handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"tunisiaguide/internal/session"
	"tunisiaguide/pkg/serrors"
)

func (h Handler) writeSession(w http.ResponseWriter, status int) {
	state := h.deps.Sessions.State()
	u, ok := h.deps.Sessions.Current()

	writeJSON(w, status, func(e *jx.Encoder) {
		encodeSession(e, state, u, ok)
	})
}

// GetSession returns the session state and user.
func (h Handler) GetSession(w http.ResponseWriter, _ *http.Request) {
	h.writeSession(w, http.StatusOK)
}

// attemptError maps a failed sign-in to its API error. rejected describes
// invalid credentials.
func attemptError(outcome session.Outcome, rejected error) error {
	switch outcome {
	case session.OutcomeBusy:
		return serrors.With(serrors.ErrConflict, "another sign-in is in progress")
	case session.OutcomeNotReady:
		return serrors.With(serrors.ErrUnavailable, "the session is still loading")
	default:
		return rejected
	}
}

// Login signs in with email and password. The response is sent after the
// session delay.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "login"))

		return
	}

	outcome := h.deps.Sessions.AttemptLogin(r.Context(), c.Email, c.Password)
	if outcome != session.OutcomeSuccess {
		h.writeError(w, r, attemptError(outcome,
			serrors.With(serrors.ErrUnauthorized, "invalid email or password")))

		return
	}
	h.writeSession(w, http.StatusOK)
}

// Register creates an account and signs in with it.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "register"))

		return
	}

	outcome := h.deps.Sessions.AttemptRegister(r.Context(), c.Email, c.Password, c.Name)
	if outcome != session.OutcomeSuccess {
		h.writeError(w, r, attemptError(outcome, serrors.With(serrors.ErrBadRequest,
			"email, name and a password of at least 6 characters are required")))

		return
	}
	h.writeSession(w, http.StatusCreated)
}

// Logout ends the session. It succeeds without a session too.
func (h Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.deps.Sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// UpdateProfile merges the given fields into the session user.
func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	upd, err := decodeUserUpdate(r)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "update profile"))

		return
	}
	switch {
	case upd.IsEmpty():
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "no fields to update"))

		return
	case upd.Email != nil && *upd.Email == "":
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "email cannot be empty"))

		return
	}

	if _, ok := h.deps.Sessions.Current(); !ok {
		h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "no active session"))

		return
	}

	h.deps.Sessions.UpdateProfile(r.Context(), upd)
	h.writeSession(w, http.StatusOK)
}
