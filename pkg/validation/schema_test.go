package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFailFastPerField(t *testing.T) {
	s := NewSchema().
		Field("name",
			Required("name is required"),
			Length(2, 100, "name must be 2-100 characters")).
		Field("phone",
			Required("phone is required"),
			PhoneDigits("phone must be 10 or 11 digits"),
			PhoneRealistic("phone must be a valid number"))

	// Both fields invalid: one error each, and for phone only the first
	// failing rule in its chain is reported.
	_, errs := s.Validate(Form{"name": "", "phone": "abc"})
	assert.Len(t, errs, 2)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "phone must be 10 or 11 digits", errs["phone"])
	assert.True(t, errs.Has("phone"))
}

func TestValidateReturnsTrimmedForm(t *testing.T) {
	s := NewSchema().
		Field("name", Required("name is required")).
		Field("remark", Optional(Length(5, 50, "remark must be 5-50 characters")))

	cleaned, errs := s.Validate(Form{"name": "  Nguyen Van A  ", "remark": ""})
	assert.Nil(t, errs)
	assert.Equal(t, "Nguyen Van A", cleaned["name"])
	assert.Equal(t, "", cleaned["remark"])
}

func TestValidateIgnoresUnknownFields(t *testing.T) {
	s := NewSchema().Field("name", Required("name is required"))

	cleaned, errs := s.Validate(Form{"name": "ok", "extra": "dropped"})
	assert.Nil(t, errs)
	_, present := cleaned["extra"]
	assert.False(t, present)
}

func TestValidateCrossField(t *testing.T) {
	s := NewSchema().
		Field("password", Required("password is required"), Length(8, 72, "password must be 8-72 characters")).
		Field("confirmPassword", Required("confirmation is required"), EqualsField("password", "passwords do not match"))

	_, errs := s.Validate(Form{"password": "s3cretpass", "confirmPassword": "s3cretpas"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "passwords do not match", errs["confirmPassword"])

	cleaned, errs := s.Validate(Form{"password": "s3cretpass", "confirmPassword": "s3cretpass"})
	assert.Nil(t, errs)
	assert.Equal(t, "s3cretpass", cleaned["password"])
}
