// Package theme holds the light and dark visual themes of the app screens.
package theme

// Palette names every color role used by the screens. Values are hex strings.
type Palette struct {
	Primary       string `json:"primary"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`
	// Input is the fill of text fields and chips.
	Input   string `json:"input"`
	Accent  string `json:"accent"`
	Danger  string `json:"danger"`
	Success string `json:"success"`
	// UserMarker colors the current position on the map.
	UserMarker string `json:"userMarker"`
}

// Scale is a spacing scale in density-independent pixels.
type Scale struct {
	XS int `json:"xs"`
	SM int `json:"sm"`
	MD int `json:"md"`
	LG int `json:"lg"`
	XL int `json:"xl"`
}

// Radii are corner radii in density-independent pixels.
type Radii struct {
	SM   int `json:"sm"`
	MD   int `json:"md"`
	LG   int `json:"lg"`
	Pill int `json:"pill"`
}

type Theme struct {
	Dark    bool    `json:"dark"`
	Colors  Palette `json:"colors"`
	Spacing Scale   `json:"spacing"`
	Radii   Radii   `json:"radii"`
}

//nolint: gochecknoglobals
var (
	spacing = Scale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32}
	radii   = Radii{SM: 8, MD: 12, LG: 16, Pill: 20}
)

func Light() Theme {
	return Theme{
		Colors: Palette{
			Primary:       "#2563EB",
			Background:    "#FAFAFA",
			Surface:       "#FFFFFF",
			Text:          "#1E293B",
			TextSecondary: "#64748B",
			Border:        "#E2E8F0",
			Input:         "#F1F5F9",
			Accent:        "#F59E0B",
			Danger:        "#EF4444",
			Success:       "#10B981",
			UserMarker:    "#3B82F6",
		},
		Spacing: spacing,
		Radii:   radii,
	}
}

func Dark() Theme {
	return Theme{
		Dark: true,
		Colors: Palette{
			Primary:       "#3B82F6",
			Background:    "#0F172A",
			Surface:       "#1E293B",
			Text:          "#F1F5F9",
			TextSecondary: "#94A3B8",
			Border:        "#334155",
			Input:         "#334155",
			Accent:        "#F59E0B",
			Danger:        "#EF4444",
			Success:       "#10B981",
			UserMarker:    "#60A5FA",
		},
		Spacing: spacing,
		Radii:   radii,
	}
}

// For returns Dark() when dark is set and Light() otherwise.
func For(dark bool) Theme {
	if dark {
		return Dark()
	}

	return Light()
}
