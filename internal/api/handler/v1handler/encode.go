package v1handler

import (
	"github.com/go-faster/jx"

	"tunisiaguide/internal/mapview"
	"tunisiaguide/internal/session"
	"tunisiaguide/internal/theme"
	"tunisiaguide/pkg/domain"
)

func encodeStrField(e *jx.Encoder, name, v string) {
	e.FieldStart(name)
	e.Str(v)
}

func encodeCoordinates(e *jx.Encoder, c domain.Coordinates) {
	e.ObjStart()
	e.FieldStart("lat")
	e.Float64(c.Lat)
	e.FieldStart("lng")
	e.Float64(c.Lng)
	e.ObjEnd()
}

func encodeAttractionFields(e *jx.Encoder, a domain.Attraction) {
	encodeStrField(e, "id", a.ID)
	encodeStrField(e, "name", a.Name)
	encodeStrField(e, "description", a.Description)
	encodeStrField(e, "image", a.Image)
	encodeStrField(e, "type", a.Type)
	e.FieldStart("rating")
	e.Float64(a.Rating)
	encodeStrField(e, "duration", a.Duration)
	e.FieldStart("coordinates")
	encodeCoordinates(e, a.Coordinates)
}

func encodeAttraction(e *jx.Encoder, a domain.Attraction) {
	e.ObjStart()
	encodeAttractionFields(e, a)
	e.ObjEnd()
}

func encodeTaggedAttraction(e *jx.Encoder, a domain.TaggedAttraction) {
	e.ObjStart()
	encodeAttractionFields(e, a.Attraction)
	encodeStrField(e, "governorate", a.GovernorateName)
	encodeStrField(e, "governorateId", a.GovernorateID)
	e.ObjEnd()
}

func encodeCuisine(e *jx.Encoder, c domain.CuisineItem) {
	e.ObjStart()
	encodeStrField(e, "name", c.Name)
	encodeStrField(e, "description", c.Description)
	if c.IsSpecialty {
		e.FieldStart("isSpecialty")
		e.Bool(true)
	}
	e.ObjEnd()
}

func encodeTextPair(e *jx.Encoder, k1, v1, k2, v2 string) {
	e.ObjStart()
	encodeStrField(e, k1, v1)
	encodeStrField(e, k2, v2)
	e.ObjEnd()
}

// encodeRating writes the average, or null for a governorate without attractions.
func encodeRating(e *jx.Encoder, avg float64, ok bool) {
	if !ok {
		e.Null()

		return
	}
	e.Float64(avg)
}

func encodeGovernorate(e *jx.Encoder, g domain.Governorate, avg float64, hasAvg bool) {
	e.ObjStart()
	encodeStrField(e, "id", g.ID)
	encodeStrField(e, "name", g.Name)
	encodeStrField(e, "nameArabic", g.NameArabic)
	encodeStrField(e, "capital", g.Capital)
	encodeStrField(e, "description", g.Description)
	encodeStrField(e, "image", g.Image)
	e.FieldStart("coordinates")
	encodeCoordinates(e, g.Coordinates)
	e.FieldStart("averageRating")
	encodeRating(e, avg, hasAvg)

	e.FieldStart("attractions")
	e.ArrStart()
	for _, a := range g.Attractions {
		encodeAttraction(e, a)
	}
	e.ArrEnd()

	e.FieldStart("cuisine")
	e.ArrStart()
	for _, c := range g.Cuisine {
		encodeCuisine(e, c)
	}
	e.ArrEnd()

	e.FieldStart("culture")
	e.ArrStart()
	for _, c := range g.Culture {
		encodeTextPair(e, "tip", c.Tip, "info", c.Info)
	}
	e.ArrEnd()

	e.FieldStart("transportation")
	e.ArrStart()
	for _, t := range g.Transportation {
		encodeTextPair(e, "title", t.Title, "info", t.Info)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeGuideCategory(e *jx.Encoder, c domain.GuideCategory) {
	e.ObjStart()
	encodeStrField(e, "id", string(c.ID))
	encodeStrField(e, "title", c.Title)
	encodeStrField(e, "color", c.Color)
	e.FieldStart("items")
	e.ArrStart()
	for _, p := range c.Phrases {
		e.ObjStart()
		encodeStrField(e, "arabic", p.Arabic)
		encodeStrField(e, "phonetic", p.Phonetic)
		encodeStrField(e, "english", p.English)
		e.ObjEnd()
	}
	for _, it := range c.Cuisine {
		encodeCuisine(e, it)
	}
	for _, t := range c.Transport {
		encodeTextPair(e, "title", t.Title, "info", t.Info)
	}
	for _, t := range c.Culture {
		encodeTextPair(e, "tip", t.Tip, "info", t.Info)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeUser(e *jx.Encoder, u domain.User) {
	e.ObjStart()
	encodeStrField(e, "id", u.ID.String())
	encodeStrField(e, "email", u.Email)
	encodeStrField(e, "name", u.Name)
	if u.Avatar != "" {
		encodeStrField(e, "avatar", u.Avatar)
	}
	e.ObjEnd()
}

func encodeSession(e *jx.Encoder, state session.State, u domain.User, ok bool) {
	e.ObjStart()
	encodeStrField(e, "state", state.String())
	e.FieldStart("user")
	if ok {
		encodeUser(e, u)
	} else {
		e.Null()
	}
	e.ObjEnd()
}

func encodeTheme(e *jx.Encoder, t theme.Theme) {
	c := t.Colors
	e.ObjStart()
	e.FieldStart("dark")
	e.Bool(t.Dark)

	e.FieldStart("colors")
	e.ObjStart()
	encodeStrField(e, "primary", c.Primary)
	encodeStrField(e, "background", c.Background)
	encodeStrField(e, "surface", c.Surface)
	encodeStrField(e, "text", c.Text)
	encodeStrField(e, "textSecondary", c.TextSecondary)
	encodeStrField(e, "border", c.Border)
	encodeStrField(e, "input", c.Input)
	encodeStrField(e, "accent", c.Accent)
	encodeStrField(e, "danger", c.Danger)
	encodeStrField(e, "success", c.Success)
	encodeStrField(e, "userMarker", c.UserMarker)
	e.ObjEnd()

	e.FieldStart("spacing")
	encodeInts(e, []string{"xs", "sm", "md", "lg", "xl"},
		[]int{t.Spacing.XS, t.Spacing.SM, t.Spacing.MD, t.Spacing.LG, t.Spacing.XL})
	e.FieldStart("radii")
	encodeInts(e, []string{"sm", "md", "lg", "pill"},
		[]int{t.Radii.SM, t.Radii.MD, t.Radii.LG, t.Radii.Pill})
	e.ObjEnd()
}

func encodeInts(e *jx.Encoder, names []string, values []int) {
	e.ObjStart()
	for i, n := range names {
		e.FieldStart(n)
		e.Int(values[i])
	}
	e.ObjEnd()
}

func encodeScene(e *jx.Encoder, s mapview.Scene, categories []string) {
	e.ObjStart()
	encodeStrField(e, "kind", string(s.Kind))

	e.FieldStart("categories")
	e.ArrStart()
	for _, c := range categories {
		e.Str(c)
	}
	e.ArrEnd()

	if s.Region != nil {
		e.FieldStart("region")
		e.ObjStart()
		e.FieldStart("center")
		encodeCoordinates(e, s.Region.Center)
		e.FieldStart("latitudeDelta")
		e.Float64(s.Region.LatitudeDelta)
		e.FieldStart("longitudeDelta")
		e.Float64(s.Region.LongitudeDelta)
		e.ObjEnd()

		e.FieldStart("markers")
		e.ArrStart()
		for _, m := range s.Markers {
			e.ObjStart()
			encodeStrField(e, "key", m.Key)
			encodeStrField(e, "title", m.Title)
			if m.Description != "" {
				encodeStrField(e, "description", m.Description)
			}
			e.FieldStart("coordinates")
			encodeCoordinates(e, m.Coordinates)
			if m.Color != "" {
				encodeStrField(e, "color", m.Color)
			}
			e.ObjEnd()
		}
		e.ArrEnd()
	}

	if s.Placeholder != nil {
		e.FieldStart("placeholder")
		e.ObjStart()
		encodeStrField(e, "title", s.Placeholder.Title)
		encodeStrField(e, "subtitle", s.Placeholder.Subtitle)
		e.ObjEnd()
	}
	e.ObjEnd()
}
