// Package catalog is the read-only access layer over the governorate dataset.
// The dataset is loaded once, validated, and never mutated; every method is
// safe for concurrent use and returns copies the caller may modify freely.
package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"slices"
	"strings"

	"tunisiaguide/pkg/domain"
)

//go:embed data/governorates.json
var dataset []byte

// AllCategories is the sentinel category that disables attraction filtering.
const AllCategories = "All"

// mapCategories are the filter chips offered above the attraction map.
var mapCategories = []string{AllCategories, "Historic", "Museums", "Beaches", "Archaeological", "Oasis"} //nolint: gochecknoglobals,lll

// Store serves lookups and filters over an immutable list of governorates.
type Store struct {
	governorates []domain.Governorate
	byID         map[string]int
}

// New returns a Store over the embedded dataset.
func New() (*Store, error) {
	return NewFromJSON(dataset)
}

// NewFromJSON returns a Store over a JSON-encoded governorate array.
func NewFromJSON(data []byte) (*Store, error) {
	govs, err := decodeGovernorates(data)
	if err != nil {
		return nil, err
	}

	return NewFromGovernorates(govs)
}

// NewFromGovernorates validates govs and returns a Store over a private copy.
func NewFromGovernorates(govs []domain.Governorate) (*Store, error) {
	s := &Store{
		governorates: make([]domain.Governorate, 0, len(govs)),
		byID:         make(map[string]int, len(govs)),
	}

	for i, g := range govs {
		if err := validate(g); err != nil {
			return nil, fmt.Errorf("invalid governorate #%d: %w", i, err)
		}
		if _, dup := s.byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate governorate id %q", g.ID)
		}
		s.byID[g.ID] = len(s.governorates)
		s.governorates = append(s.governorates, clone(g))
	}

	return s, nil
}

func validate(g domain.Governorate) error {
	if g.ID == "" {
		return fmt.Errorf("empty id")
	}

	seen := make(map[string]struct{}, len(g.Attractions))
	for _, a := range g.Attractions {
		if a.ID == "" {
			return fmt.Errorf("%s: attraction with empty id", g.ID)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%s: duplicate attraction id %q", g.ID, a.ID)
		}
		seen[a.ID] = struct{}{}

		// written negated so that NaN fails too
		if !(a.Rating >= domain.MinRating && a.Rating <= domain.MaxRating) {
			return fmt.Errorf("%s/%s: rating %v out of range", g.ID, a.ID, a.Rating)
		}
	}

	return nil
}

func clone(g domain.Governorate) domain.Governorate {
	g.Attractions = slices.Clone(g.Attractions)
	g.Cuisine = slices.Clone(g.Cuisine)
	g.Culture = slices.Clone(g.Culture)
	g.Transportation = slices.Clone(g.Transportation)

	return g
}

// Governorates returns every governorate in dataset order.
func (s *Store) Governorates() []domain.Governorate {
	out := make([]domain.Governorate, len(s.governorates))
	for i, g := range s.governorates {
		out[i] = clone(g)
	}

	return out
}

// GetByID returns the governorate with the given id. The boolean is false
// when no governorate matches.
func (s *Store) GetByID(id string) (domain.Governorate, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Governorate{}, false
	}

	return clone(s.governorates[i]), true
}

// AttractionsByGovernorate returns the attractions of one governorate, or an
// empty slice for an unknown id.
func (s *Store) AttractionsByGovernorate(id string) []domain.Attraction {
	i, ok := s.byID[id]
	if !ok {
		return []domain.Attraction{}
	}

	return slices.Clone(s.governorates[i].Attractions)
}

// AllAttractions flattens every governorate's attractions, in dataset order
// then attraction order, tagging each with its governorate. The slice is
// freshly built on each call.
func (s *Store) AllAttractions() []domain.TaggedAttraction {
	var n int
	for _, g := range s.governorates {
		n += len(g.Attractions)
	}

	out := make([]domain.TaggedAttraction, 0, n)
	for _, g := range s.governorates {
		for _, a := range g.Attractions {
			out = append(out, domain.TaggedAttraction{
				Attraction:      a,
				GovernorateName: g.Name,
				GovernorateID:   g.ID,
			})
		}
	}

	return out
}

// FilterAttractionsByCategory returns the attractions whose type contains
// category, ignoring case. AllCategories returns every attraction; an empty
// category matches nothing.
func (s *Store) FilterAttractionsByCategory(category string) []domain.TaggedAttraction {
	all := s.AllAttractions()
	switch category {
	case AllCategories:
		return all
	case "":
		return []domain.TaggedAttraction{}
	}

	needle := strings.ToLower(category)
	out := make([]domain.TaggedAttraction, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Type), needle) {
			out = append(out, a)
		}
	}

	return out
}

// SearchGovernorates returns, in dataset order, the governorates matching
// query on any of: name, capital or description (case-insensitive), or the
// Arabic name (exact case). An empty query returns every governorate.
func (s *Store) SearchGovernorates(query string) []domain.Governorate {
	if query == "" {
		return s.Governorates()
	}

	lower := strings.ToLower(query)
	out := make([]domain.Governorate, 0)
	for _, g := range s.governorates {
		if strings.Contains(strings.ToLower(g.Name), lower) ||
			strings.Contains(g.NameArabic, query) ||
			strings.Contains(strings.ToLower(g.Capital), lower) ||
			strings.Contains(strings.ToLower(g.Description), lower) {
			out = append(out, clone(g))
		}
	}

	return out
}

// AverageRating returns the mean attraction rating of g. The boolean is false
// when g has no attractions.
func (s *Store) AverageRating(g domain.Governorate) (float64, bool) {
	if len(g.Attractions) == 0 {
		return 0, false
	}

	var sum float64
	for _, a := range g.Attractions {
		sum += a.Rating
	}
	avg := sum / float64(len(g.Attractions))
	if math.IsNaN(avg) {
		return 0, false
	}

	return avg, true
}

// Stats returns the dataset totals.
func (s *Store) Stats() domain.CatalogStats {
	st := domain.CatalogStats{Governorates: len(s.governorates)}
	for _, g := range s.governorates {
		st.Attractions += len(g.Attractions)
		st.CuisineItems += len(g.Cuisine)
	}

	return st
}

// MapCategories returns the category filters offered on the map, AllCategories first.
func (s *Store) MapCategories() []string {
	return slices.Clone(mapCategories)
}
