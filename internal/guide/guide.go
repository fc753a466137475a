// Package guide serves the country-wide travel guide: the phrasebook, the
// national cuisine list, transport options, cultural etiquette and the
// emergency numbers. The content is static.
package guide

import (
	"slices"

	"tunisiaguide/pkg/domain"
)

// DefaultCategory is shown when no category, or an unknown one, is requested.
const DefaultCategory = domain.GuideCategoryPhrases

// Categories returns every guide category in display order.
func Categories() []domain.GuideCategory {
	out := make([]domain.GuideCategory, len(categories))
	for i, c := range categories {
		out[i] = cloneCategory(c)
	}

	return out
}

// Category returns the category with the given id.
func Category(id domain.GuideCategoryID) (domain.GuideCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return cloneCategory(c), true
		}
	}

	return domain.GuideCategory{}, false
}

// CategoryOrDefault returns the category with the given id, falling back to
// DefaultCategory.
func CategoryOrDefault(id domain.GuideCategoryID) domain.GuideCategory {
	if c, ok := Category(id); ok {
		return c
	}
	c, _ := Category(DefaultCategory)

	return c
}

// EmergencyContacts returns the national emergency numbers.
func EmergencyContacts() []domain.EmergencyContact {
	return slices.Clone(emergencyContacts)
}

func cloneCategory(c domain.GuideCategory) domain.GuideCategory {
	c.Phrases = slices.Clone(c.Phrases)
	c.Cuisine = slices.Clone(c.Cuisine)
	c.Transport = slices.Clone(c.Transport)
	c.Culture = slices.Clone(c.Culture)

	return c
}
