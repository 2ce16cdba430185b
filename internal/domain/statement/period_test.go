package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, time.March, 31, 15, 4, 5, 0, time.UTC)

func TestResolveRolling(t *testing.T) {
	tests := []struct {
		token string
		start time.Time
		label string
	}{
		{RangeMonth, time.Date(2024, time.February, 29, 15, 4, 5, 0, time.UTC), "month"},
		{RangeSixMonths, time.Date(2023, time.September, 30, 15, 4, 5, 0, time.UTC), "six_months"},
		{RangeYear, time.Date(2023, time.March, 31, 15, 4, 5, 0, time.UTC), "year"},
		{"", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), "all"},
		{"decade", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), "decade"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p := ResolveRolling(tt.token, now)
			assert.Equal(t, tt.start, p.Start)
			assert.Equal(t, now, p.End)
			assert.Equal(t, tt.label, p.Label)
		})
	}
}

func TestResolveRolling_YearIsNowMinusOneYear(t *testing.T) {
	at := time.Date(2025, time.July, 14, 9, 30, 0, 0, time.UTC)
	p := ResolveRolling(RangeYear, at)

	assert.Equal(t, at.AddDate(-1, 0, 0), p.Start)
	assert.Equal(t, at, p.End)
}

func TestResolveCalendar_LastMonth(t *testing.T) {
	p := ResolveCalendar(RangeLastMonth, now)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestResolveCalendar_LastMonthAcrossYear(t *testing.T) {
	p := ResolveCalendar(RangeLastMonth, time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestResolveCalendar_LastSixMonths(t *testing.T) {
	p := ResolveCalendar(RangeLastSix, now)

	assert.Equal(t, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestResolveCalendar_LastYear(t *testing.T) {
	p := ResolveCalendar(RangeLastYear, now)

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestResolveCalendar_Unknown(t *testing.T) {
	p := ResolveCalendar("whatever", now)

	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, now, p.End)
}

func TestPeriod_ContainsIsInclusive(t *testing.T) {
	p := ResolveCalendar(RangeLastMonth, now)

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	assert.False(t, p.Contains(p.Start.Add(-time.Nanosecond)))
	assert.False(t, p.Contains(p.End.Add(time.Nanosecond)))
}
