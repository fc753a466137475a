package catalog_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tunisiaguide/internal/catalog"
	"tunisiaguide/pkg/domain"
)

func newStore(t *testing.T) *catalog.Store {
	t.Helper()

	s, err := catalog.New()
	require.NoError(t, err)

	return s
}

func TestNew_EmbeddedDataset(t *testing.T) {
	s := newStore(t)

	require.Equal(t, domain.CatalogStats{Governorates: 24, Attractions: 32, CuisineItems: 53}, s.Stats())

	govs := s.Governorates()
	require.Equal(t, "tunis", govs[0].ID)
	require.Equal(t, "tataouine", govs[len(govs)-1].ID)
}

func TestDataset_AttractionIDsUniqueWithinGovernorate(t *testing.T) {
	for _, g := range newStore(t).Governorates() {
		seen := map[string]bool{}
		for _, a := range g.Attractions {
			require.False(t, seen[a.ID], "%s: duplicate attraction %s", g.ID, a.ID)
			seen[a.ID] = true
			require.GreaterOrEqual(t, a.Rating, domain.MinRating)
			require.LessOrEqual(t, a.Rating, domain.MaxRating)
		}
	}
}

func TestGetByID(t *testing.T) {
	s := newStore(t)

	g, ok := s.GetByID("tozeur")
	require.True(t, ok)
	require.Equal(t, "Tozeur", g.Name)
	require.Equal(t, "توزر", g.NameArabic)
	require.Len(t, g.Attractions, 2)
	require.Equal(t, domain.Coordinates{Lat: 33.9197, Lng: 8.1342}, g.Coordinates)

	for _, id := range []string{"", "Tunis", "atlantis", "tunis "} {
		_, ok := s.GetByID(id)
		require.False(t, ok, "id %q should not be found", id)
	}
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	s := newStore(t)

	g, _ := s.GetByID("tunis")
	g.Attractions[0].Name = "mutated"
	g.Name = "mutated"

	again, _ := s.GetByID("tunis")
	require.Equal(t, "Tunis", again.Name)
	require.Equal(t, "Tunis Medina", again.Attractions[0].Name)
}

func TestAttractionsByGovernorate(t *testing.T) {
	s := newStore(t)

	got := s.AttractionsByGovernorate("ariana")
	require.Len(t, got, 3)
	require.Equal(t, "sidi-bou-said", got[0].ID)

	require.Empty(t, s.AttractionsByGovernorate("nowhere"))
	require.NotNil(t, s.AttractionsByGovernorate("nowhere"))
}

func TestAllAttractions_OrderAndTags(t *testing.T) {
	s := newStore(t)

	all := s.AllAttractions()
	require.Len(t, all, 32)

	require.Equal(t, "medina-tunis", all[0].ID)
	require.Equal(t, "Tunis", all[0].GovernorateName)
	require.Equal(t, "tunis", all[0].GovernorateID)
	require.Equal(t, "bardo-museum", all[1].ID)
	require.Equal(t, "sidi-bou-said", all[2].ID)
	require.Equal(t, "ariana", all[2].GovernorateID)
	require.Equal(t, "ksar-hadada", all[len(all)-1].ID)

	// fresh on every call
	all[0].Name = "mutated"
	require.Equal(t, "Tunis Medina", s.AllAttractions()[0].Name)
}

func TestFilterAttractionsByCategory(t *testing.T) {
	s := newStore(t)

	require.Equal(t, s.AllAttractions(), s.FilterAttractionsByCategory(catalog.AllCategories))

	beaches := s.FilterAttractionsByCategory("Beach")
	require.Len(t, beaches, 2)
	require.Equal(t, "la-marsa", beaches[0].ID)
	require.Equal(t, "hammamet", beaches[1].ID)
	for _, a := range beaches {
		require.Contains(t, strings.ToLower(a.Type), "beach")
	}

	require.Equal(t, beaches, s.FilterAttractionsByCategory("bEaCh"))

	oasis := s.FilterAttractionsByCategory("Oasis")
	require.Len(t, oasis, 2) // "Oasis" and "Coastal Oasis"

	require.Len(t, s.FilterAttractionsByCategory("Historic"), 10)

	// plural chips only match types that literally contain them
	require.Empty(t, s.FilterAttractionsByCategory("Beaches"))

	require.Empty(t, s.FilterAttractionsByCategory(""))
	require.Empty(t, s.FilterAttractionsByCategory("Casino"))
}

func TestFilterAttractionsByCategory_Fixture(t *testing.T) {
	s, err := catalog.NewFromGovernorates([]domain.Governorate{{
		ID:   "g",
		Name: "G",
		Attractions: []domain.Attraction{
			{ID: "a", Type: "Beach Resort", Rating: 4},
			{ID: "b", Type: "Historic District", Rating: 3},
		},
	}})
	require.NoError(t, err)

	got := s.FilterAttractionsByCategory("Beach")
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].ID)
}

func TestSearchGovernorates(t *testing.T) {
	s := newStore(t)

	ids := func(govs []domain.Governorate) []string {
		out := make([]string, 0, len(govs))
		for _, g := range govs {
			out = append(out, g.ID)
		}

		return out
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name case-insensitive", query: "SOUSSE", want: []string{"sousse"}},
		{name: "arabic exact", query: "توزر", want: []string{"tozeur"}},
		{name: "capital with accent", query: "gabès", want: []string{"gabes"}},
		{name: "description", query: "star wars", want: []string{"tozeur", "tataouine"}},
		{name: "description beaches", query: "beaches", want: []string{"nabeul", "bizerte", "sousse", "mahdia"}},
		{name: "no match", query: "atlantis", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ids(s.SearchGovernorates(tt.query)))
		})
	}
}

func TestSearchGovernorates_EmptyAndIdempotent(t *testing.T) {
	s := newStore(t)

	require.Equal(t, s.Governorates(), s.SearchGovernorates(""))

	first := s.SearchGovernorates("oasis")
	require.Equal(t, first, s.SearchGovernorates("oasis"))

	all := map[string]bool{}
	for _, g := range s.Governorates() {
		all[g.ID] = true
	}
	for _, g := range first {
		require.True(t, all[g.ID])
	}
}

func TestAverageRating(t *testing.T) {
	s := newStore(t)

	tunis, _ := s.GetByID("tunis")
	avg, ok := s.AverageRating(tunis)
	require.True(t, ok)
	require.InDelta(t, 4.6, avg, 1e-9)

	ariana, _ := s.GetByID("ariana")
	avg, ok = s.AverageRating(ariana)
	require.True(t, ok)
	require.InDelta(t, (4.8+4.6+4.3)/3, avg, 1e-9)

	for _, g := range s.Governorates() {
		avg, ok := s.AverageRating(g)
		require.True(t, ok)
		var sum float64
		for _, a := range g.Attractions {
			sum += a.Rating
		}
		require.InDelta(t, sum/float64(len(g.Attractions)), avg, 1e-9)
	}

	_, ok = s.AverageRating(domain.Governorate{ID: "empty"})
	require.False(t, ok)
}

func TestMapCategories(t *testing.T) {
	s := newStore(t)

	cats := s.MapCategories()
	require.Equal(t, catalog.AllCategories, cats[0])
	require.Len(t, cats, 6)

	cats[0] = "mutated"
	require.Equal(t, catalog.AllCategories, s.MapCategories()[0])
}

func TestNewFromJSON_Validation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{`},
		{name: "not an array", data: `{"id":"x"}`},
		{name: "empty id", data: `[{"id":""}]`},
		{name: "duplicate governorate", data: `[{"id":"x"},{"id":"x"}]`},
		{name: "duplicate attraction", data: `[{"id":"x","attractions":[{"id":"a"},{"id":"a"}]}]`},
		{name: "rating too high", data: `[{"id":"x","attractions":[{"id":"a","rating":5.5}]}]`},
		{name: "rating negative", data: `[{"id":"x","attractions":[{"id":"a","rating":-1}]}]`},
		{name: "wrong type", data: `[{"id":"x","attractions":[{"id":"a","rating":"high"}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewFromJSON([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestNewFromGovernorates_RejectsNonFiniteRating(t *testing.T) {
	for _, rating := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := catalog.NewFromGovernorates([]domain.Governorate{{
			ID:          "x",
			Attractions: []domain.Attraction{{ID: "a", Rating: rating}},
		}})
		require.Error(t, err, "rating %v", rating)
	}

	s := newStore(t)
	_, ok := s.AverageRating(domain.Governorate{
		ID:          "x",
		Attractions: []domain.Attraction{{ID: "a", Rating: math.NaN()}},
	})
	require.False(t, ok)
}

func TestNewFromJSON_SharedAttractionIDsAcrossGovernorates(t *testing.T) {
	s, err := catalog.NewFromJSON([]byte(`[
		{"id":"x","name":"X","attractions":[{"id":"medina","type":"Historic District","rating":4}],"extra":{"ignored":true}},
		{"id":"y","name":"Y","attractions":[{"id":"medina","type":"Historic District","rating":5}]}
	]`))
	require.NoError(t, err)
	require.Len(t, s.AllAttractions(), 2)
}
