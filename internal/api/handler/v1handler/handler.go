// Package v1handler implements the /v1 HTTP routes used by the app screens.
package v1handler

import (
	"context"
	"net/http"

	"tunisiaguide/internal/catalog"
	"tunisiaguide/internal/mapview"
	"tunisiaguide/internal/session"
	"tunisiaguide/pkg/domain"
)

// Sessions is the session surface used by the handlers. It is satisfied by
// *session.Manager.
type Sessions interface {
	AttemptLogin(ctx context.Context, email, password string) session.Outcome
	AttemptRegister(ctx context.Context, email, password, name string) session.Outcome
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, upd domain.UserUpdate)
	Current() (domain.User, bool)
	State() session.State
}

// Notifications is satisfied by *notification.Service.
type Notifications interface {
	Enabled() bool
	SetEnabled(ctx context.Context, enabled bool)
}

type Deps struct {
	Catalog       *catalog.Store
	Sessions      Sessions
	Notifications Notifications
}

// Platforms are the client platforms a map renderer is selected for.
// Requests naming another platform get the one for DefaultPlatform.
//
//nolint: gochecknoglobals
var Platforms = []string{"ios", "android", "web"}

const DefaultPlatform = "web"

type Handler struct {
	deps      Deps
	renderers map[string]mapview.Renderer
}

func New(deps Deps) *Handler {
	renderers := make(map[string]mapview.Renderer, len(Platforms))
	for _, p := range Platforms {
		renderers[p] = mapview.Select(mapview.CapabilitiesFor(p))
	}

	return &Handler{
		deps:      deps,
		renderers: renderers,
	}
}

// Route is a mux pattern and the handler serving it.
type Route struct {
	Pattern string
	Handler http.HandlerFunc
}

// Routes lists every /v1 route in registration order.
func (h *Handler) Routes() []Route {
	return []Route{
		{"GET /v1/governorates", h.ListGovernorates},
		{"GET /v1/governorates/{id}", h.GetGovernorate},
		{"GET /v1/governorates/{id}/rating", h.GetRating},
		{"GET /v1/governorates/{id}/attractions", h.ListGovernorateAttractions},
		{"GET /v1/attractions", h.ListAttractions},
		{"GET /v1/stats", h.GetStats},
		{"GET /v1/guide", h.GetDefaultGuide},
		{"GET /v1/guide/categories", h.ListGuideCategories},
		{"GET /v1/guide/{category}", h.GetGuide},
		{"GET /v1/emergency", h.ListEmergencyContacts},
		{"GET /v1/theme", h.GetTheme},
		{"GET /v1/map", h.GetMap},
		{"GET /v1/session", h.GetSession},
		{"POST /v1/session/login", h.Login},
		{"POST /v1/session/register", h.Register},
		{"DELETE /v1/session", h.Logout},
		{"PATCH /v1/session/profile", h.UpdateProfile},
		{"GET /v1/settings/notifications", h.GetNotificationSettings},
		{"PUT /v1/settings/notifications", h.PutNotificationSettings},
	}
}
