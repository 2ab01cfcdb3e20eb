package label

import "strings"

// Canonical gender keys. Display labels and accepted input spellings map
// onto these; everything downstream (filters, schemas) compares keys only.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// genderSynonyms maps accepted input spellings (already lower-cased and
// trimmed) to canonical keys. Vietnamese forms are listed both with and
// without diacritics because imported records carry either.
var genderSynonyms = map[string]string{
	"male":     GenderMale,
	"m":        GenderMale,
	"nam":      GenderMale,
	"nam giới": GenderMale,
	"nam gioi": GenderMale,
	"female":   GenderFemale,
	"f":        GenderFemale,
	"nữ":       GenderFemale,
	"nu":       GenderFemale,
	"nữ giới":  GenderFemale,
	"nu gioi":  GenderFemale,
	"other":    GenderOther,
	"o":        GenderOther,
	"khác":     GenderOther,
	"khac":     GenderOther,
}

// NormalizeGender maps free-form gender input to a canonical key.
// Unrecognized non-empty input passes through lower-cased and trimmed so
// callers can surface it instead of losing data. Empty input yields "".
func NormalizeGender(input string) string {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if cleaned == "" {
		return ""
	}
	if key, ok := genderSynonyms[cleaned]; ok {
		return key
	}
	return cleaned
}

// IsGenderKey reports whether key is one of the canonical gender keys.
func IsGenderKey(key string) bool {
	switch key {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
