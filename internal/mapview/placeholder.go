package mapview

// PlaceholderRenderer ignores the attractions and shows a static panel.
type PlaceholderRenderer struct{}

var _ Renderer = PlaceholderRenderer{}

func (PlaceholderRenderer) Kind() Kind { return KindPlaceholder }

func (PlaceholderRenderer) Render(Request) Scene {
	return Scene{
		Kind: KindPlaceholder,
		Placeholder: &Placeholder{
			Title:    "Carte interactive",
			Subtitle: "Disponible sur mobile",
		},
	}
}
