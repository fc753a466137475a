package catalog

import (
	"fmt"

	"github.com/go-faster/jx"

	"tunisiaguide/pkg/domain"
)

// decodeGovernorates parses the dataset document: a JSON array of governorate
// objects. Unknown keys are skipped so the data file can carry annotations.
func decodeGovernorates(data []byte) ([]domain.Governorate, error) {
	var out []domain.Governorate
	err := jx.DecodeBytes(data).Arr(func(d *jx.Decoder) error {
		g, err := decodeGovernorate(d)
		if err != nil {
			return fmt.Errorf("governorate #%d: %w", len(out), err)
		}
		out = append(out, g)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode dataset: %w", err)
	}

	return out, nil
}

func decodeGovernorate(d *jx.Decoder) (domain.Governorate, error) {
	var g domain.Governorate
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			g.ID, err = d.Str()
		case "name":
			g.Name, err = d.Str()
		case "nameArabic":
			g.NameArabic, err = d.Str()
		case "capital":
			g.Capital, err = d.Str()
		case "description":
			g.Description, err = d.Str()
		case "image":
			g.Image, err = d.Str()
		case "coordinates":
			g.Coordinates, err = decodeCoordinates(d)
		case "attractions":
			err = d.Arr(func(d *jx.Decoder) error {
				a, err := decodeAttraction(d)
				g.Attractions = append(g.Attractions, a)

				return err
			})
		case "cuisine":
			err = d.Arr(func(d *jx.Decoder) error {
				c, err := decodeCuisine(d)
				g.Cuisine = append(g.Cuisine, c)

				return err
			})
		case "culture":
			err = d.Arr(func(d *jx.Decoder) error {
				var c domain.CultureTip
				err := decodeTextPair(d, "tip", &c.Tip, "info", &c.Info)
				g.Culture = append(g.Culture, c)

				return err
			})
		case "transportation":
			err = d.Arr(func(d *jx.Decoder) error {
				var t domain.TransportInfo
				err := decodeTextPair(d, "title", &t.Title, "info", &t.Info)
				g.Transportation = append(g.Transportation, t)

				return err
			})
		default:
			err = d.Skip()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		return nil
	})

	return g, err //nolint: wrapcheck
}

func decodeAttraction(d *jx.Decoder) (domain.Attraction, error) {
	var a domain.Attraction
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			a.ID, err = d.Str()
		case "name":
			a.Name, err = d.Str()
		case "description":
			a.Description, err = d.Str()
		case "image":
			a.Image, err = d.Str()
		case "type":
			a.Type, err = d.Str()
		case "rating":
			a.Rating, err = d.Float64()
		case "duration":
			a.Duration, err = d.Str()
		case "coordinates":
			a.Coordinates, err = decodeCoordinates(d)
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	})

	return a, err //nolint: wrapcheck
}

func decodeCuisine(d *jx.Decoder) (domain.CuisineItem, error) {
	var c domain.CuisineItem
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			c.Name, err = d.Str()
		case "description":
			c.Description, err = d.Str()
		case "isSpecialty":
			c.IsSpecialty, err = d.Bool()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	})

	return c, err //nolint: wrapcheck
}

func decodeCoordinates(d *jx.Decoder) (domain.Coordinates, error) {
	var c domain.Coordinates
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "lat":
			c.Lat, err = d.Float64()
		case "lng":
			c.Lng, err = d.Float64()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	})

	return c, err //nolint: wrapcheck
}

// decodeTextPair decodes an object with two string fields into a and b.
func decodeTextPair(d *jx.Decoder, keyA string, a *string, keyB string, b *string) error {
	return d.Obj(func(d *jx.Decoder, key string) error { //nolint: wrapcheck
		var err error
		switch key {
		case keyA:
			*a, err = d.Str()
		case keyB:
			*b, err = d.Str()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	})
}
