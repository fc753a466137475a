package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"tunisiaguide/internal/catalog"
	"tunisiaguide/pkg/domain"
	"tunisiaguide/pkg/serrors"
)

// ListGovernorates returns the governorates matching the q query parameter,
// or all of them.
func (h Handler) ListGovernorates(w http.ResponseWriter, r *http.Request) {
	govs := h.deps.Catalog.SearchGovernorates(r.URL.Query().Get("q"))

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, g := range govs {
			avg, ok := h.deps.Catalog.AverageRating(g)
			encodeGovernorate(e, g, avg, ok)
		}
		e.ArrEnd()
	})
}

func (h Handler) governorate(r *http.Request) (domain.Governorate, error) {
	id := r.PathValue("id")
	g, ok := h.deps.Catalog.GetByID(id)
	if !ok {
		return domain.Governorate{}, serrors.With(serrors.ErrNotFound, "governorate %q not found", id)
	}

	return g, nil
}

// GetGovernorate returns one governorate with its attractions, cuisine,
// culture tips and transport options.
func (h Handler) GetGovernorate(w http.ResponseWriter, r *http.Request) {
	g, err := h.governorate(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	avg, ok := h.deps.Catalog.AverageRating(g)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeGovernorate(e, g, avg, ok)
	})
}

// GetRating returns the mean attraction rating of a governorate. The average
// is null when the governorate has no attractions.
func (h Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	g, err := h.governorate(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	avg, ok := h.deps.Catalog.AverageRating(g)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		encodeStrField(e, "governorateId", g.ID)
		e.FieldStart("average")
		encodeRating(e, avg, ok)
		e.FieldStart("count")
		e.Int(len(g.Attractions))
		e.ObjEnd()
	})
}

// ListGovernorateAttractions returns the attractions of one governorate.
func (h Handler) ListGovernorateAttractions(w http.ResponseWriter, r *http.Request) {
	g, err := h.governorate(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	attractions := h.deps.Catalog.AttractionsByGovernorate(g.ID)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, a := range attractions {
			encodeAttraction(e, a)
		}
		e.ArrEnd()
	})
}

// ListAttractions returns the attractions whose type contains the category
// query parameter. Without the parameter every attraction is returned.
func (h Handler) ListAttractions(w http.ResponseWriter, r *http.Request) {
	category := catalog.AllCategories
	if q := r.URL.Query(); q.Has("category") {
		category = q.Get("category")
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, a := range h.deps.Catalog.FilterAttractionsByCategory(category) {
			encodeTaggedAttraction(e, a)
		}
		e.ArrEnd()
	})
}

// GetStats returns the catalog totals.
func (h Handler) GetStats(w http.ResponseWriter, _ *http.Request) {
	stats := h.deps.Catalog.Stats()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeInts(e, []string{"governorates", "attractions", "cuisineItems"},
			[]int{stats.Governorates, stats.Attractions, stats.CuisineItems})
	})
}
