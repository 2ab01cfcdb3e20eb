// Package filter reproduces the list filtering the lab portals perform over
// fetched record sets: free-text search, role/category and status dropdowns,
// and a time-range cutoff, all evaluated in memory with stable order.
package filter

import "strings"

// Category tokens with special meaning. Any other token is matched against
// the record's category field by case-insensitive equality.
const (
	CategoryAll   = "all"
	CategoryGuest = "guest"
)

// Status tokens.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Accounts carry roles like ROLE_ADMIN; anything without this prefix (or
// with no role at all) buckets as a guest. The prefix is a fixed literal,
// matching the portal's heuristic.
const rolePrefix = "ROLE_"

// Record is what a list entry must expose to be filterable. Implementations
// return their raw timestamp string; parsing stays inside the filter so
// mixed legacy formats are handled in one place.
type Record interface {
	// SearchFields returns the text fields the free-text query matches
	// against (name, email, phone, id, plus domain extras).
	SearchFields() []string
	// CategoryKey returns the record's role/category token, "" if none.
	CategoryKey() string
	// Deactivated reports the normalized deactivated/banned flag.
	Deactivated() bool
	// FilterDate returns the raw timestamp string the time-range
	// predicate applies to.
	FilterDate() string
}

// Criteria is one immutable set of list filter inputs. Zero values and the
// "all" tokens mean "no constraint".
type Criteria struct {
	Query    string
	Category string
	Status   string
	Bound    Boundary
}

// Apply returns the records satisfying every active predicate, preserving
// input order. A record failing one predicate is skipped without evaluating
// the rest for it.
func Apply[T Record](records []T, c Criteria) []T {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if !matchCategory(r.CategoryKey(), c.Category) {
			continue
		}
		if !matchStatus(r.Deactivated(), c.Status) {
			continue
		}
		if !matchBoundary(r.FilterDate(), c.Bound) {
			continue
		}
		if !matchQuery(r.SearchFields(), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchCategory(category, token string) bool {
	switch token {
	case "", CategoryAll:
		return true
	case CategoryGuest:
		return category == "" || !strings.HasPrefix(strings.ToUpper(category), rolePrefix)
	default:
		return strings.EqualFold(category, token)
	}
}

func matchStatus(deactivated bool, token string) bool {
	switch token {
	case StatusActive:
		return !deactivated
	case StatusInactive:
		return deactivated
	default:
		return true
	}
}

func matchBoundary(rawDate string, b Boundary) bool {
	if b.Kind == BoundNone {
		return true
	}
	d, ok := ParseRecordDate(rawDate)
	if !ok {
		// Records without a usable timestamp never pass a dated filter.
		return false
	}
	switch b.Kind {
	case BoundYear:
		return d.Year() == b.Year
	case BoundSince:
		return !d.Before(b.Since)
	}
	return true
}

func matchQuery(fields []string, query string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
