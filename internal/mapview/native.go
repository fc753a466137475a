package mapview

// UserMarkerTitle labels the user's position.
const UserMarkerTitle = "Ma position"

// NativeRenderer places a marker on every attraction.
type NativeRenderer struct{}

var _ Renderer = NativeRenderer{}

func (NativeRenderer) Kind() Kind { return KindNative }

func (NativeRenderer) Render(req Request) Scene {
	region := TunisiaRegion
	markers := make([]Marker, 0, len(req.Attractions)+1)
	for _, a := range req.Attractions {
		markers = append(markers, Marker{
			Key:         a.GovernorateID + "-" + a.ID,
			Title:       a.Name,
			Description: a.Description,
			Coordinates: a.Coordinates,
		})
	}

	if req.UserLocation != nil {
		region = Region{
			Center:         *req.UserLocation,
			LatitudeDelta:  userRegionDelta,
			LongitudeDelta: userRegionDelta,
		}
		markers = append(markers, Marker{
			Key:         "user",
			Title:       UserMarkerTitle,
			Coordinates: *req.UserLocation,
			Color:       req.Theme.Colors.UserMarker,
		})
	}

	return Scene{
		Kind:    KindNative,
		Region:  &region,
		Markers: markers,
	}
}
