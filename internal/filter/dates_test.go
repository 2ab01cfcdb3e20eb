package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRecordDateFormats(t *testing.T) {
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"29/02/2024",
		"29-02-2024",
		"2024-02-29",
		"2024-02-29T10:45:12Z",
		"2024-02-29 10:45:12",
		"  29/02/2024  ",
	} {
		got, ok := ParseRecordDate(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseRecordDateStripsTimeOfDay(t *testing.T) {
	got, ok := ParseRecordDate("2023-11-05T23:59:59+07:00")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseRecordDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"not a date",
		"32/01/2024",
		"29/02/2023", // not a leap year
		"2024/02/29",
		"15.03.2024",
	} {
		_, ok := ParseRecordDate(input)
		assert.False(t, ok, "input %q", input)
	}
}
