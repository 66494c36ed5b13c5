package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapLink(t *testing.T) {
	c := Coordinate{Latitude: 10.3, Longitude: -85.8}
	assert.Equal(t, "https://www.google.com/maps?q=10.3,-85.8", c.MapLink())

	parsed, ok := ParseMapLink(c.MapLink())
	assert.True(t, ok)
	assert.Equal(t, c, parsed)
}

func TestParseMapLink(t *testing.T) {
	c, ok := ParseMapLink("https://www.google.com/maps?q=10.2995,-85.8402")
	assert.True(t, ok)
	assert.Equal(t, 10.2995, c.Latitude)
	assert.Equal(t, -85.8402, c.Longitude)

	c, ok = ParseMapLink("maps?q=10.5, -85.5&z=13")
	assert.True(t, ok)
	assert.Equal(t, Coordinate{Latitude: 10.5, Longitude: -85.5}, c)
}

func TestParseMapLinkRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"abc",
		"https://www.google.com/maps?q=",
		"https://www.google.com/maps?q=10.3",
		"https://www.google.com/maps?q=10.3,-85.8,4",
		"https://www.google.com/maps?q=lat,lon",
		"https://www.google.com/maps?q=NaN,-85.8",
		"https://www.google.com/maps?q=10.3,Inf",
		"10.3,-85.8",
	} {
		_, ok := ParseMapLink(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseMapLinkOutOfBounds(t *testing.T) {
	c, ok := ParseMapLink("https://www.google.com/maps?q=95,-85.8")
	assert.True(t, ok)
	assert.Equal(t, Coordinate{Latitude: 95, Longitude: -85.8}, c)
	assert.False(t, c.Valid())

	c, ok = ParseMapLink("https://www.google.com/maps?q=10.3,-200")
	assert.True(t, ok)
	assert.Equal(t, Coordinate{Latitude: 10.3, Longitude: -200}, c)
	assert.False(t, c.Valid())
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Latitude: 10.3, Longitude: -85.8}.Valid())
	assert.True(t, Coordinate{Latitude: -90, Longitude: 180}.Valid())
	assert.False(t, Coordinate{Latitude: 90.5, Longitude: 0}.Valid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: -180.1}.Valid())
	assert.False(t, Coordinate{Latitude: math.NaN(), Longitude: 0}.Valid())
	assert.True(t, Coordinate{Latitude: 95, Longitude: 0}.Finite())
}
