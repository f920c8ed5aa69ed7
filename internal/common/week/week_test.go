package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func TestFromTimeStableWithinWeek(t *testing.T) {
	loc := seoul(t)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, loc)
	sunday := time.Date(2026, time.March, 8, 23, 59, 59, 0, loc)

	assert.Equal(t, ID("2026-W10"), FromTime(monday, loc))
	assert.Equal(t, ID("2026-W10"), FromTime(sunday, loc))
}

func TestFromTimeIncreasesWeekOverWeek(t *testing.T) {
	loc := seoul(t)

	current := time.Date(2026, time.March, 2, 12, 0, 0, 0, loc)
	next := current.AddDate(0, 0, 7)

	assert.Equal(t, ID("2026-W11"), FromTime(next, loc))
	assert.Less(t, string(FromTime(current, loc)), string(FromTime(next, loc)))
}

func TestFromTimeUsesReferenceZone(t *testing.T) {
	loc := seoul(t)

	// Sunday 16:00 UTC is already Monday 01:00 in Seoul
	utcSunday := time.Date(2026, time.March, 8, 16, 0, 0, 0, time.UTC)

	assert.Equal(t, ID("2026-W11"), FromTime(utcSunday, loc))
}

func TestDayIndex(t *testing.T) {
	loc := seoul(t)

	monday := time.Date(2026, time.March, 2, 12, 0, 0, 0, loc)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, i, DayIndex(day, loc))
		assert.Equal(t, i >= 5, IsWeekend(day, loc))
	}
}

func TestSameDay(t *testing.T) {
	loc := seoul(t)

	morning := time.Date(2026, time.March, 2, 0, 10, 0, 0, loc)
	night := time.Date(2026, time.March, 2, 23, 50, 0, 0, loc)
	nextDay := time.Date(2026, time.March, 3, 0, 0, 1, 0, loc)

	assert.True(t, SameDay(morning, night, loc))
	assert.False(t, SameDay(night, nextDay, loc))

	// Zone conversion decides the calendar day
	utcEvening := time.Date(2026, time.March, 2, 20, 0, 0, 0, time.UTC) // March 3 in Seoul
	assert.False(t, SameDay(morning, utcEvening, loc))
}

func TestMonthAndOrdinalWeek(t *testing.T) {
	loc := seoul(t)

	tests := []struct {
		name    string
		t       time.Time
		month   time.Month
		ordinal int
	}{
		{
			name:    "mid-month",
			t:       time.Date(2026, time.March, 2, 12, 0, 0, 0, loc),
			month:   time.March,
			ordinal: 2,
		},
		{
			name:    "first week of a plain month",
			t:       time.Date(2026, time.March, 1, 12, 0, 0, 0, loc),
			month:   time.March,
			ordinal: 1,
		},
		{
			name:    "december days carried into next ISO year",
			t:       time.Date(2025, time.December, 29, 12, 0, 0, 0, loc),
			month:   time.December,
			ordinal: 5,
		},
		{
			name:    "january opening in previous ISO year",
			t:       time.Date(2027, time.January, 15, 12, 0, 0, 0, loc),
			month:   time.January,
			ordinal: 3,
		},
		{
			name:    "new year's day in previous ISO year",
			t:       time.Date(2027, time.January, 1, 12, 0, 0, 0, loc),
			month:   time.January,
			ordinal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, ordinal := MonthAndOrdinalWeek(tt.t, loc)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.ordinal, ordinal)
		})
	}
}
