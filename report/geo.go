package report

import (
	"github.com/bitmark-inc/commerce-survey/consts"
	"github.com/bitmark-inc/commerce-survey/schema"
)

// GeoPoint is one located record on the map.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
	Color     string  `json:"color"`
	Address   string  `json:"address,omitempty"`
}

// Coordinate returns the point location.
func (p GeoPoint) Coordinate() schema.Coordinate {
	return schema.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// ExtractCoordinate reads the coordinate out of a stored map link. It never
// fails: malformed or blank links report false.
func ExtractCoordinate(raw string) (schema.Coordinate, bool) {
	return schema.ParseMapLink(raw)
}

// CollectGeoPoints emits one point per record holding a resolvable map link,
// colored by the record's value in categoryColumn.
func CollectGeoPoints(records []schema.Record, locationColumn, categoryColumn string) []GeoPoint {
	points := []GeoPoint{}
	for _, r := range records {
		c, ok := ExtractCoordinate(r[locationColumn])
		if !ok {
			continue
		}

		category := r[categoryColumn]
		points = append(points, GeoPoint{
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Category:  category,
			Color:     consts.DistrictColor(category),
		})
	}
	return points
}
