package utils

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is how submission times are written into the table.
const TimestampLayout = "2006-01-02T15:04:05.000000"

const DefaultTimezone = "GMT-6"

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns a location of a GMT-X format timezone from a pre-defined locations map.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	return nil
}

// FormatTimestamp renders t in the given GMT-X timezone. Unknown timezones
// fall back to GMT-6, the offset of Costa Rica.
func FormatTimestamp(t time.Time, timezone string) string {
	loc := GetLocation(timezone)
	if loc == nil {
		loc = GetLocation(DefaultTimezone)
	}
	return t.In(loc).Format(TimestampLayout)
}
