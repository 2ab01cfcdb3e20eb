package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type listEntry struct {
	id          string
	name        string
	email       string
	phone       string
	role        string
	deactivated bool
	date        string
}

func (e listEntry) SearchFields() []string { return []string{e.name, e.email, e.phone, e.id} }
func (e listEntry) CategoryKey() string    { return e.role }
func (e listEntry) Deactivated() bool      { return e.deactivated }
func (e listEntry) FilterDate() string     { return e.date }

var sampleEntries = []listEntry{
	{id: "1", name: "Nguyen Van A", email: "a@lab.vn", phone: "0912345678", role: "ROLE_ADMIN", date: "10/01/2024"},
	{id: "2", name: "Tran Thi B", email: "b@lab.vn", phone: "0987654321", role: "ROLE_DOCTOR", deactivated: true, date: "2023-06-15"},
	{id: "3", name: "Le Van C", email: "c@lab.vn", phone: "0905112233", role: "", date: "05-03-2023"},
	{id: "4", name: "Pham Thi D", email: "d@lab.vn", phone: "0977001122", role: "intern", date: "bad-date"},
}

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	got := Apply(sampleEntries, Criteria{Category: CategoryAll, Status: StatusAll, Bound: NoBound()})
	assert.Equal(t, sampleEntries, got)

	got = Apply(sampleEntries, Criteria{})
	assert.Equal(t, sampleEntries, got)
}

func TestApplyEmptyInput(t *testing.T) {
	var entries []listEntry

	got := Apply(entries, Criteria{Query: "anything"})
	assert.Empty(t, got)

	got = Apply(entries, Criteria{})
	assert.Empty(t, got)
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(sampleEntries, Criteria{Query: "lab.vn"})
	assert.Len(t, got, 4)
	for i, e := range got {
		assert.Equal(t, sampleEntries[i].id, e.id)
	}
}

func TestApplyFreeTextIsCaseInsensitiveSubstring(t *testing.T) {
	got := Apply(sampleEntries, Criteria{Query: "  NGUYEN  "})
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].id)

	// Phone and id are searchable too.
	got = Apply(sampleEntries, Criteria{Query: "0987"})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].id)

	got = Apply(sampleEntries, Criteria{Query: "no such text"})
	assert.Empty(t, got)
}

func TestApplyStatusHandlesBothFlagRepresentations(t *testing.T) {
	// Upstream JSON may carry deleted as 0/1 or true/false; by the time
	// records reach the filter the flag is a plain bool either way.
	entries := []listEntry{
		{id: "1", name: "Nguyen Van A"},
		{id: "2", name: "Tran Thi B", deactivated: true},
	}

	got := Apply(entries, Criteria{Status: StatusInactive})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].id)

	got = Apply(entries, Criteria{Status: StatusActive})
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].id)
}

func TestApplyCategoryEquality(t *testing.T) {
	got := Apply(sampleEntries, Criteria{Category: "role_admin"})
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].id)
}

func TestApplyGuestBucketsUnrecognizedRoles(t *testing.T) {
	// Guests are records with no role or a role outside the ROLE_ scheme.
	got := Apply(sampleEntries, Criteria{Category: CategoryGuest})
	assert.Len(t, got, 2)
	assert.Equal(t, "3", got[0].id)
	assert.Equal(t, "4", got[1].id)
}

func TestApplyYearBoundary(t *testing.T) {
	got := Apply(sampleEntries, Criteria{Bound: YearBound(2023)})
	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].id)
	assert.Equal(t, "3", got[1].id)
}

func TestApplySinceBoundaryExcludesUnparseableDates(t *testing.T) {
	since := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	got := Apply(sampleEntries, Criteria{Bound: SinceBound(since)})
	assert.Len(t, got, 2)
	// Entry 4 has an unusable timestamp and never passes a dated filter.
	assert.Equal(t, "1", got[0].id)
	assert.Equal(t, "2", got[1].id)
}

func TestApplyCombinesPredicates(t *testing.T) {
	got := Apply(sampleEntries, Criteria{
		Query:    "lab.vn",
		Category: "ROLE_DOCTOR",
		Status:   StatusInactive,
		Bound:    YearBound(2023),
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].id)
}
