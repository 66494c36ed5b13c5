package consts

import (
	"fmt"
	"strings"
)

// Canton is where every surveyed commerce is located.
const Canton = "Santa Cruz"

// Map defaults of the location picker.
const (
	MapCenterLatitude  = 10.3
	MapCenterLongitude = -85.8
	MapZoom            = 13
)

// Marker colors of the locations map.
const (
	ColorBlue   = "#1f77b4"
	ColorGreen  = "#2ca02c"
	ColorPurple = "#9467bd"
	ColorGray   = "#7f7f7f"

	FallbackColor = ColorGray
)

var DistrictColors = map[string]string{
	"Tamarindo":  ColorBlue,
	"Cartagena":  ColorGreen,
	"Cabo Velas": ColorPurple,
}

// DistrictColor returns the marker color of a district, gray for districts
// outside the palette.
func DistrictColor(district string) string {
	if c, ok := DistrictColors[district]; ok {
		return c
	}
	return FallbackColor
}

// DistrictKey - convert a district name into key
func DistrictKey(district string) (string, error) {
	if _, ok := DistrictColors[district]; !ok {
		return "", fmt.Errorf("%s not exist", district)
	}
	return strings.ReplaceAll(strings.ToLower(district), " ", "_"), nil
}
