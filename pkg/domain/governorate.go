package domain

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether c is a finite point on the globe.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// MinRating and MaxRating bound Attraction.Rating.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Attraction is a point of interest owned by exactly one governorate.
// ID is unique within its owning governorate only.
type Attraction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	// Type is a free-text category label such as "Historic District" or "Beach".
	Type string `json:"type"`
	// Rating is in [MinRating, MaxRating].
	Rating float64 `json:"rating"`
	// Duration is a free-text visit length, e.g. "2-3 hours".
	Duration    string      `json:"duration"`
	Coordinates Coordinates `json:"coordinates"`
}

// CuisineItem is a dish associated with a governorate.
type CuisineItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSpecialty bool   `json:"isSpecialty,omitempty"`
}

// CultureTip is a local etiquette note.
type CultureTip struct {
	Tip  string `json:"tip"`
	Info string `json:"info"`
}

// TransportInfo describes a way of getting around.
type TransportInfo struct {
	Title string `json:"title"`
	Info  string `json:"info"`
}

// Governorate is a first-level administrative region of Tunisia and the
// primary partition key of the catalog. Governorates are immutable once loaded.
type Governorate struct {
	// ID is unique across the whole dataset.
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NameArabic     string          `json:"nameArabic"`
	Capital        string          `json:"capital"`
	Description    string          `json:"description"`
	Image          string          `json:"image"`
	Coordinates    Coordinates     `json:"coordinates"`
	Attractions    []Attraction    `json:"attractions"`
	Cuisine        []CuisineItem   `json:"cuisine"`
	Culture        []CultureTip    `json:"culture"`
	Transportation []TransportInfo `json:"transportation"`
}

// TaggedAttraction is an attraction flattened out of its governorate together
// with the owning governorate's name and id.
type TaggedAttraction struct {
	Attraction

	GovernorateName string `json:"governorate"`
	GovernorateID   string `json:"governorateId"`
}

// CatalogStats holds the dataset totals shown on the discover screen.
type CatalogStats struct {
	Governorates int `json:"governorates"`
	Attractions  int `json:"attractions"`
	CuisineItems int `json:"cuisineItems"`
}
