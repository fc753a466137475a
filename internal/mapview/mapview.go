// Package mapview turns filtered attractions into something the map screen can
// draw. Platforms with a native map component get markers and a region; the
// others get a static placeholder. The renderer is chosen once per platform.
package mapview

import (
	"tunisiaguide/internal/theme"
	"tunisiaguide/pkg/domain"
)

// Kind identifies a renderer.
type Kind string

const (
	KindNative      Kind = "native"
	KindPlaceholder Kind = "placeholder"
)

// Region is the visible map area.
type Region struct {
	Center         domain.Coordinates `json:"center"`
	LatitudeDelta  float64            `json:"latitudeDelta"`
	LongitudeDelta float64            `json:"longitudeDelta"`
}

// TunisiaRegion frames the whole country.
//
//nolint: gochecknoglobals
var TunisiaRegion = Region{
	Center:         domain.Coordinates{Lat: 33.8869, Lng: 9.5375},
	LatitudeDelta:  4,
	LongitudeDelta: 4,
}

// userRegionDelta zooms the map on the user's position when it is known.
const userRegionDelta = 0.1

// Marker is a pin on a native map.
type Marker struct {
	// Key is unique across the map: governorate id and attraction id.
	Key         string             `json:"key"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Coordinates domain.Coordinates `json:"coordinates"`
	// Color is set on the user marker only; attraction pins use the platform default.
	Color string `json:"color,omitempty"`
}

// Placeholder is the static panel shown instead of a map.
type Placeholder struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Request is the input of a render.
type Request struct {
	Attractions []domain.TaggedAttraction
	// UserLocation is nil when the position is unknown or not permitted.
	UserLocation *domain.Coordinates
	Theme        theme.Theme
}

// Scene is the render result. Exactly one of Region and Placeholder is set.
type Scene struct {
	Kind        Kind         `json:"kind"`
	Region      *Region      `json:"region,omitempty"`
	Markers     []Marker     `json:"markers,omitempty"`
	Placeholder *Placeholder `json:"placeholder,omitempty"`
}

type Renderer interface {
	Kind() Kind
	Render(req Request) Scene
}

// Capabilities describe what the client platform can display.
type Capabilities struct {
	NativeMaps bool
}

// CapabilitiesFor reports the capabilities of a client platform name as sent
// by the app ("ios", "android", "web"). Unknown platforms get none.
func CapabilitiesFor(platform string) Capabilities {
	switch platform {
	case "ios", "android":
		return Capabilities{NativeMaps: true}
	default:
		return Capabilities{}
	}
}

// Select returns the renderer matching caps.
func Select(caps Capabilities) Renderer {
	if caps.NativeMaps {
		return NativeRenderer{}
	}

	return PlaceholderRenderer{}
}
