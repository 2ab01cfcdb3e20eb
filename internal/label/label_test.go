package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"male", GenderMale},
		{"M", GenderMale},
		{"Nam", GenderMale},
		{"NAM GIỚI", GenderMale},
		{"NỮ ", GenderFemale},
		{"nu", GenderFemale},
		{"nữ giới", GenderFemale},
		{"F", GenderFemale},
		{"Khác", GenderOther},
		{"khac", GenderOther},
		{"", ""},
		{"   ", ""},
		{"Unknown Value", "unknown value"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeGender(tt.input), "input %q", tt.input)
	}
}

func TestIsGenderKey(t *testing.T) {
	assert.True(t, IsGenderKey(GenderMale))
	assert.True(t, IsGenderKey(GenderFemale))
	assert.True(t, IsGenderKey(GenderOther))
	assert.False(t, IsGenderKey("nam"))
	assert.False(t, IsGenderKey(""))
}

func TestLabelsAreTotal(t *testing.T) {
	assert.Equal(t, "Nữ", GenderLabel(GenderFemale))
	assert.Equal(t, "Nam", GenderLabel(GenderMale))
	assert.Equal(t, "Đang hoạt động", StatusLabel(StatusActive))
	assert.Equal(t, "Bác sĩ", RoleLabel(RoleDoctor))

	// Unknown keys pass through, empty keys stay empty.
	assert.Equal(t, "mystery", GenderLabel("mystery"))
	assert.Equal(t, "ROLE_INTERN", RoleLabel("ROLE_INTERN"))
	assert.Equal(t, "", StatusLabel(""))
}
