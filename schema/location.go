package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	mapLinkPrefix = "https://www.google.com/maps?q="
	mapLinkMarker = "maps?q="
)

// Coordinate is a WGS84 point picked on the survey map.
type Coordinate struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Finite reports whether neither component is NaN or infinite.
func (c Coordinate) Finite() bool {
	return !math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude) &&
		!math.IsInf(c.Latitude, 0) && !math.IsInf(c.Longitude, 0)
}

// Valid reports whether the coordinate is finite and inside WGS84 bounds.
func (c Coordinate) Valid() bool {
	if !c.Finite() {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// MapLink renders the coordinate as the link stored in the location column.
func (c Coordinate) MapLink() string {
	return fmt.Sprintf("%s%s,%s", mapLinkPrefix,
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64))
}

// ParseMapLink extracts the coordinate embedded after "maps?q=". The query
// must hold exactly two comma separated finite numbers; anything else,
// including an empty string, reports false. Bounds are not checked here, a
// stored link is plotted as long as it parses. Submissions are bounded by
// Valid.
func ParseMapLink(raw string) (Coordinate, bool) {
	i := strings.Index(raw, mapLinkMarker)
	if i < 0 {
		return Coordinate{}, false
	}

	q := raw[i+len(mapLinkMarker):]
	if j := strings.IndexAny(q, "&#"); j >= 0 {
		q = q[:j]
	}

	parts := strings.Split(q, ",")
	if len(parts) != 2 {
		return Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, false
	}

	c := Coordinate{Latitude: lat, Longitude: lon}
	if !c.Finite() {
		return Coordinate{}, false
	}
	return c, true
}
