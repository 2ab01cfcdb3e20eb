package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoundaryAtLast30Days(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	b := BoundaryAt(RangeLast30Days, now)
	assert.Equal(t, BoundSince, b.Kind)
	assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), b.Since)
}

func TestBoundaryAtLast6MonthsUsesCalendarArithmetic(t *testing.T) {
	// Subtracting 6 calendar months from Mar 31 normalizes through the
	// shorter month instead of counting a fixed number of days.
	now := time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC)

	b := BoundaryAt(RangeLast6Mon, now)
	assert.Equal(t, BoundSince, b.Kind)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC).AddDate(0, -6, 0), b.Since)
}

func TestBoundaryAtLastYearIsAYearNotACutoff(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	b := BoundaryAt(RangeLastYear, now)
	assert.Equal(t, BoundYear, b.Kind)
	assert.Equal(t, 2023, b.Year)
	assert.True(t, b.Since.IsZero())
}

func TestBoundaryAtUnknownTokensMeanNoConstraint(t *testing.T) {
	now := time.Now()
	for _, token := range []string{RangeAll, "", "90days", "next-week", "1 year"} {
		b := BoundaryAt(token, now)
		assert.Equal(t, BoundNone, b.Kind, "token %q", token)
	}
}
