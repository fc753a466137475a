package domain

// GuideCategoryID identifies one section of the travel guide.
type GuideCategoryID string

const (
	GuideCategoryPhrases   GuideCategoryID = "phrases"
	GuideCategoryCuisine   GuideCategoryID = "cuisine"
	GuideCategoryTransport GuideCategoryID = "transport"
	GuideCategoryCulture   GuideCategoryID = "culture"
)

// Phrase is a phrasebook entry.
type Phrase struct {
	Arabic   string `json:"arabic"`
	Phonetic string `json:"phonetic"`
	English  string `json:"english"`
}

// GuideCategory is one section of the country-wide guide. Exactly one of the
// content slices is populated, matching ID.
type GuideCategory struct {
	ID    GuideCategoryID `json:"id"`
	Title string          `json:"title"`
	// Color is the accent color of the category button, as a hex string.
	Color string `json:"color"`

	Phrases   []Phrase        `json:"phrases,omitempty"`
	Cuisine   []CuisineItem   `json:"cuisine,omitempty"`
	Transport []TransportInfo `json:"transport,omitempty"`
	Culture   []CultureTip    `json:"culture,omitempty"`
}

// Len returns the number of entries in the populated content slice.
func (c GuideCategory) Len() int {
	return len(c.Phrases) + len(c.Cuisine) + len(c.Transport) + len(c.Culture)
}

// EmergencyContact is a national emergency phone number.
type EmergencyContact struct {
	Service string `json:"service"`
	Number  string `json:"number"`
}
