package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	msgLen   = "phone must be 10 or 11 digits"
	msgValid = "phone must be a valid number"
)

func runCheck(c Check, value string) string {
	return c(value, Form{})
}

func TestPhoneDigits(t *testing.T) {
	c := PhoneDigits(msgLen)

	assert.Empty(t, runCheck(c, "0912345678"))
	assert.Empty(t, runCheck(c, "84912345678"))
	assert.Equal(t, msgLen, runCheck(c, "091234567"))
	assert.Equal(t, msgLen, runCheck(c, "091234567890"))
	assert.Equal(t, msgLen, runCheck(c, "091-234-5678"))
	assert.Equal(t, msgLen, runCheck(c, ""))
}

func TestPhoneRealisticRejectsDegeneratePatterns(t *testing.T) {
	c := PhoneRealistic(msgValid)

	// These satisfy the length rule yet fail with the distinct message.
	assert.Equal(t, msgValid, runCheck(c, "0000000000"))
	assert.Equal(t, msgValid, runCheck(c, "1111111111"))
	assert.Equal(t, msgValid, runCheck(c, "0123456789"))
	assert.Equal(t, msgValid, runCheck(c, "9876543210"))

	assert.Empty(t, runCheck(c, "0912345678"))
	assert.Empty(t, runCheck(c, "0123456788"))
}

func TestPhoneMessagesAreDistinct(t *testing.T) {
	s := NewSchema().Field("phone", Required("phone is required"), PhoneDigits(msgLen), PhoneRealistic(msgValid))

	_, errs := s.Validate(Form{"phone": "12345"})
	assert.Equal(t, msgLen, errs["phone"])

	_, errs = s.Validate(Form{"phone": "0123456789"})
	assert.Equal(t, msgValid, errs["phone"])
}

func TestIntlPhone(t *testing.T) {
	c := IntlPhone("invalid contact number")

	assert.Empty(t, runCheck(c, "+84901234567"))
	assert.Empty(t, runCheck(c, "849012345"))
	assert.NotEmpty(t, runCheck(c, "+84 901234567"))
	assert.NotEmpty(t, runCheck(c, "+12345678"))
	assert.NotEmpty(t, runCheck(c, "+1234567890123456"))
}

func TestDateDMYDoesCalendarArithmetic(t *testing.T) {
	c := DateDMY("invalid date")

	assert.Empty(t, runCheck(c, "29/02/2024"))
	assert.Equal(t, "invalid date", runCheck(c, "29/02/2023"))
	assert.Equal(t, "invalid date", runCheck(c, "31/02/2024"))
	assert.Equal(t, "invalid date", runCheck(c, "31/04/2024"))
	assert.Equal(t, "invalid date", runCheck(c, "2024-02-29"))
}

func TestBirthDate(t *testing.T) {
	c := BirthDate("invalid birth date")

	assert.Empty(t, runCheck(c, "15/06/1990"))
	assert.Equal(t, "invalid birth date", runCheck(c, "31/12/1899"))

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("02/01/2006")
	assert.Equal(t, "invalid birth date", runCheck(c, tomorrow))

	// Younger than one year.
	sixMonthsAgo := time.Now().UTC().AddDate(0, -6, 0).Format("02/01/2006")
	assert.Equal(t, "invalid birth date", runCheck(c, sixMonthsAgo))
}

func TestFutureAndPastDates(t *testing.T) {
	future := FutureDate("expiry must be in the future")
	past := PastOrToday("test date cannot be in the future")

	nextYear := time.Now().UTC().AddDate(1, 0, 0).Format("02/01/2006")
	lastYear := time.Now().UTC().AddDate(-1, 0, 0).Format("02/01/2006")
	today := time.Now().UTC().Format("02/01/2006")

	assert.Empty(t, runCheck(future, nextYear))
	assert.NotEmpty(t, runCheck(future, lastYear))
	assert.NotEmpty(t, runCheck(future, today), "expiry today is already expired")

	assert.Empty(t, runCheck(past, lastYear))
	assert.Empty(t, runCheck(past, today))
	assert.NotEmpty(t, runCheck(past, nextYear))
}

func TestLengthCountsRunes(t *testing.T) {
	c := Length(2, 6, "bad length")

	assert.Empty(t, runCheck(c, "ab"))
	assert.Empty(t, runCheck(c, "Hà Nội"), "6 runes even though 8 bytes")
	assert.Equal(t, "bad length", runCheck(c, "a"))
	assert.Equal(t, "bad length", runCheck(c, "abcdefg"))
}

func TestOneOfIgnoresCase(t *testing.T) {
	c := OneOf([]string{"routine", "urgent", "stat"}, MessageOneOf("priority", []string{"routine", "urgent", "stat"}))

	assert.Empty(t, runCheck(c, "URGENT"))
	assert.Equal(t, fmt.Sprintf("please choose a valid %s (%s)", "priority", "routine, urgent, stat"), runCheck(c, "whenever"))
}

func TestEqualsField(t *testing.T) {
	c := EqualsField("password", "passwords do not match")

	form := Form{"password": "s3cretpass"}
	assert.Empty(t, c("s3cretpass", form))
	assert.Equal(t, "passwords do not match", c("different", form))
}

func TestOptionalSkipsEmptyValues(t *testing.T) {
	c := Optional(Length(5, 50, "bad length"))

	assert.Empty(t, runCheck(c, ""))
	assert.Equal(t, "bad length", runCheck(c, "abc"))
	assert.Empty(t, runCheck(c, "long enough remark"))
}
