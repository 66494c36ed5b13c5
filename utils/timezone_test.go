package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLocation(t *testing.T) {
	tz8 := GetLocation("GMT+8")
	assert.NotNil(t, tz8)
	assert.Equal(t, "GMT+8", tz8.String())

	tz_6 := GetLocation("gmt-6")
	assert.NotNil(t, tz_6)
	assert.Equal(t, "GMT-6", tz_6.String())

	tz0 := GetLocation("GMT+0")
	assert.NotNil(t, tz0)

	assert.Nil(t, GetLocation("GMT+12:45"))
	assert.Nil(t, GetLocation("America/Costa_Rica"))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 5, 1, 16, 30, 0, 123456000, time.UTC)

	assert.Equal(t, "2025-05-01T10:30:00.123456", FormatTimestamp(ts, "GMT-6"))
	assert.Equal(t, "2025-05-01T16:30:00.123456", FormatTimestamp(ts, "GMT+0"))
	assert.Equal(t, "2025-05-01T10:30:00.123456", FormatTimestamp(ts, "unknown"))
}
