package filter

import "time"

// Time-range tokens accepted from list query params. Anything outside this
// set means "no constraint".
const (
	RangeAll        = "all"
	RangeLast30Days = "30days"
	RangeLast6Mon   = "6months"
	RangeLastYear   = "1year"
)

// BoundKind discriminates the three boundary shapes. "Last calendar year"
// is a year-equality test, not a since-cutoff, so it gets its own variant
// instead of overloading a time value.
type BoundKind int

const (
	BoundNone BoundKind = iota
	BoundSince
	BoundYear
)

// Boundary is the cutoff a date-bounded list filter compares against.
type Boundary struct {
	Kind  BoundKind
	Since time.Time
	Year  int
}

// NoBound returns the unconstrained boundary.
func NoBound() Boundary { return Boundary{Kind: BoundNone} }

// SinceBound returns a boundary that passes records dated at or after t.
func SinceBound(t time.Time) Boundary { return Boundary{Kind: BoundSince, Since: t} }

// YearBound returns a boundary that passes records dated within year.
func YearBound(year int) Boundary { return Boundary{Kind: BoundYear, Year: year} }

// BoundaryFor resolves a time-range token against the current clock.
func BoundaryFor(token string) Boundary {
	return BoundaryAt(token, time.Now())
}

// BoundaryAt resolves a time-range token against an explicit reference
// instant. Unknown tokens yield no constraint; this never fails.
func BoundaryAt(token string, now time.Time) Boundary {
	// Record dates parse to UTC midnights, so the cutoff lives in UTC too.
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch token {
	case RangeLast30Days:
		return SinceBound(midnight.AddDate(0, 0, -30))
	case RangeLast6Mon:
		// Calendar-month arithmetic; AddDate normalizes day-of-month
		// overflow the same way the portal's date library did.
		return SinceBound(midnight.AddDate(0, -6, 0))
	case RangeLastYear:
		return YearBound(now.Year() - 1)
	default:
		return NoBound()
	}
}
