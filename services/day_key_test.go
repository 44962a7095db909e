package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKeySameDay(t *testing.T) {
	days, err := NewDayKeys("America/New_York")
	assert.NoError(t, err)

	loc, _ := time.LoadLocation("America/New_York")
	morning := time.Date(2025, 10, 19, 7, 15, 0, 0, loc)
	evening := time.Date(2025, 10, 19, 23, 59, 59, 0, loc)

	assert.Equal(t, "2025-10-19", days.For(morning))
	assert.Equal(t, days.For(morning), days.For(evening))
}

func TestDayKeyRollsOverAtReferenceMidnight(t *testing.T) {
	days, err := NewDayKeys("America/New_York")
	assert.NoError(t, err)

	loc, _ := time.LoadLocation("America/New_York")
	before := time.Date(2025, 10, 19, 23, 59, 59, 0, loc)
	after := time.Date(2025, 10, 20, 0, 0, 1, 0, loc)

	assert.NotEqual(t, days.For(before), days.For(after))
	assert.Equal(t, "2025-10-20", days.For(after))
}

func TestDayKeyUsesReferenceZoneNotUTC(t *testing.T) {
	days, err := NewDayKeys("America/New_York")
	assert.NoError(t, err)

	// 03:00 UTC on July 1 is still the evening of June 30 in New York.
	instant := time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-30", days.For(instant))
}

func TestDayKeyUnknownZone(t *testing.T) {
	_, err := NewDayKeys("Nowhere/Invalid")
	assert.Error(t, err)
}
