package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"

	"tunisiaguide/internal/guide"
	"tunisiaguide/internal/theme"
	"tunisiaguide/pkg/domain"
	"tunisiaguide/pkg/serrors"
)

// GetDefaultGuide returns the category the guide screen opens on.
func (h Handler) GetDefaultGuide(w http.ResponseWriter, _ *http.Request) {
	c := guide.CategoryOrDefault("")

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeGuideCategory(e, c)
	})
}

// ListGuideCategories returns the categories of the guide screen selector,
// without their items.
func (h Handler) ListGuideCategories(w http.ResponseWriter, _ *http.Request) {
	cats := guide.Categories()
	def := guide.CategoryOrDefault("").ID

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, c := range cats {
			e.ObjStart()
			encodeStrField(e, "id", string(c.ID))
			encodeStrField(e, "title", c.Title)
			encodeStrField(e, "color", c.Color)
			e.FieldStart("default")
			e.Bool(c.ID == def)
			e.ObjEnd()
		}
		e.ArrEnd()
	})
}

func (h Handler) GetGuide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("category")
	c, ok := guide.Category(domain.GuideCategoryID(id))
	if !ok {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "guide category %q not found", id))

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeGuideCategory(e, c)
	})
}

func (h Handler) ListEmergencyContacts(w http.ResponseWriter, _ *http.Request) {
	contacts := guide.EmergencyContacts()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, c := range contacts {
			encodeTextPair(e, "service", c.Service, "number", c.Number)
		}
		e.ArrEnd()
	})
}

// parseDark reads the optional dark query parameter.
func parseDark(r *http.Request) (bool, error) {
	v := r.URL.Query().Get("dark")
	if v == "" {
		return false, nil
	}

	dark, err := strconv.ParseBool(v)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrBadRequest, err, "invalid dark parameter")
	}

	return dark, nil
}

// GetTheme returns the light theme, or the dark one with dark=true.
func (h Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := parseDark(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeTheme(e, theme.For(dark))
	})
}
