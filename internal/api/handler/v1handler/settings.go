package v1handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func (h Handler) writeNotificationSettings(w http.ResponseWriter) {
	enabled := h.deps.Notifications.Enabled()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("enabled")
		e.Bool(enabled)
		e.ObjEnd()
	})
}

func (h Handler) GetNotificationSettings(w http.ResponseWriter, _ *http.Request) {
	h.writeNotificationSettings(w)
}

// PutNotificationSettings stores the notification preference. Enabling asks
// the platform for permission.
func (h Handler) PutNotificationSettings(w http.ResponseWriter, r *http.Request) {
	enabled, err := decodeEnabled(r)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "notification settings"))

		return
	}

	h.deps.Notifications.SetEnabled(r.Context(), enabled)
	h.writeNotificationSettings(w)
}
