package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateStringAt(t *testing.T) {
	at := time.Date(2025, 11, 10, 23, 45, 0, 0, time.Local)
	assert.Equal(t, "2025-11-10", DateStringAt(at))
}

func TestDayStringsAreOrdered(t *testing.T) {
	yesterday, today, tomorrow := YesterdayString(), TodayString(), TomorrowString()

	assert.Less(t, yesterday, today)
	assert.Less(t, today, tomorrow)

	// YYYY-MM-DD ordering matches chronological ordering.
	yk, err := HeatmapKey(yesterday)
	require.NoError(t, err)
	tk, err := HeatmapKey(today)
	require.NoError(t, err)
	assert.Less(t, yk, tk)
}

func TestHeatmapKey_RoundTripsThroughLocalMidnight(t *testing.T) {
	key, err := HeatmapKey("2025-11-10")
	require.NoError(t, err)

	back := time.Unix(key, 0).In(time.Local)
	assert.Equal(t, "2025-11-10", back.Format(DateLayout))
	assert.Equal(t, 0, back.Hour())
	assert.Equal(t, 0, back.Minute())
}

func TestHeatmapKey_RejectsMalformedDates(t *testing.T) {
	for _, bad := range []string{"", "nope", "2025-13-40", "10-11-2025"} {
		_, err := HeatmapKey(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
