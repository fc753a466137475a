package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"tunisiaguide/internal/catalog"
	"tunisiaguide/internal/mapview"
	"tunisiaguide/internal/theme"
	"tunisiaguide/pkg/domain"
	"tunisiaguide/pkg/serrors"
)

// parseLocation reads the optional lat and lng query parameters. Both or
// neither must be present.
func parseLocation(r *http.Request) (*domain.Coordinates, error) {
	q := r.URL.Query()
	lat, lng := q.Get("lat"), q.Get("lng")
	if lat == "" && lng == "" {
		return nil, nil //nolint: nilnil
	}
	if lat == "" || lng == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "lat and lng must be given together")
	}

	var c domain.Coordinates
	var err error
	if c.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid lat")
	}
	if c.Lng, err = strconv.ParseFloat(lng, 64); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid lng")
	}
	if !c.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "lat must be within [-90, 90] and lng within [-180, 180]")
	}

	return &c, nil
}

func (h Handler) renderer(platform string) mapview.Renderer {
	if r, ok := h.renderers[platform]; ok {
		return r
	}

	return h.renderers[DefaultPlatform]
}

// GetMap renders the map screen for the platform query parameter: markers
// for the attractions of the selected category on native platforms, a
// placeholder elsewhere.
func (h Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	loc, err := parseLocation(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	dark, err := parseDark(r)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "map"))

		return
	}

	q := r.URL.Query()
	category := catalog.AllCategories
	if q.Has("category") {
		category = q.Get("category")
	}

	scene := h.renderer(q.Get("platform")).Render(mapview.Request{
		Attractions:  h.deps.Catalog.FilterAttractionsByCategory(category),
		UserLocation: loc,
		Theme:        theme.For(dark),
	})

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeScene(e, scene, h.deps.Catalog.MapCategories())
	})
}
