package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindowUTCBounds(t *testing.T) {
	from, to, err := DayWindowUTC("2026-06-12", 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 6, 12, 23, 59, 59, 999_000_000, time.UTC), to)
	assert.Equal(t, time.UTC, from.Location())
	assert.Equal(t, time.UTC, to.Location())

	// midnight of the next day sits outside the window
	nextDay := time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)
	assert.True(t, to.Before(nextDay))
	assert.Equal(t, time.Millisecond, nextDay.Sub(to))
}

func TestDayWindowUTCOffsets(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		offset int
		want   string
	}{
		{"positive offset", "2026-06-12", 3, "2026-06-15"},
		{"negative offset", "2026-06-12", -3, "2026-06-09"},
		{"crosses month end", "2026-06-30", 1, "2026-07-01"},
		{"crosses month start", "2026-03-01", -3, "2026-02-26"},
		{"crosses year end", "2026-12-31", 2, "2027-01-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := DayWindowUTC(tt.date, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, from.Format("2006-01-02"))
			assert.Equal(t, tt.want, to.Format("2006-01-02"))
			assert.Equal(t, 24*time.Hour-time.Millisecond, to.Sub(from))
		})
	}
}

func TestDayWindowUTCInvalidDate(t *testing.T) {
	for _, raw := range []string{"", "12-06-2026", "2026/06/12", "2026-13-40", "not-a-date"} {
		_, _, err := DayWindowUTC(raw, 0)
		assert.ErrorIs(t, err, ErrInvalidDate, raw)
	}
}

func TestCanSeat(t *testing.T) {
	f := Flight{SeatClasses: []SeatClass{
		{Name: "economy", AvailableSeats: 1},
		{Name: "business", AvailableSeats: 3},
	}}

	assert.True(t, f.CanSeat(3))
	// classes are not combinable: 1+3 free seats cannot take four
	assert.False(t, f.CanSeat(4))
	assert.False(t, Flight{}.CanSeat(1))
}
