package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dayMonthYear = "02/01/2006"

var (
	phoneDigitsRe = regexp.MustCompile(`^\d{10,11}$`)
	intlPhoneRe   = regexp.MustCompile(`^\+?\d{9,15}$`)
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Required fails on values that are empty after trimming.
func Required(msg string) Check {
	return func(value string, _ Form) string {
		if value == "" {
			return msg
		}
		return ""
	}
}

// Optional skips the wrapped checks entirely when the value is empty.
func Optional(checks ...Check) Check {
	return func(value string, form Form) string {
		if value == "" {
			return ""
		}
		for _, check := range checks {
			if msg := check(value, form); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Length enforces an inclusive [min, max] rune-count range.
func Length(min, max int, msg string) Check {
	return func(value string, _ Form) string {
		n := len([]rune(value))
		if n < min || n > max {
			return msg
		}
		return ""
	}
}

// Pattern fails values not matching re.
func Pattern(re *regexp.Regexp, msg string) Check {
	return func(value string, _ Form) string {
		if !re.MatchString(value) {
			return msg
		}
		return ""
	}
}

// Email checks basic address shape.
func Email(msg string) Check {
	return Pattern(emailRe, msg)
}

// PhoneDigits requires exactly 10 or 11 digits with no separators.
func PhoneDigits(msg string) Check {
	return Pattern(phoneDigitsRe, msg)
}

// PhoneRealistic rejects degenerate numbers that satisfy the digit rule:
// all-identical digits and strictly sequential runs (ascending or
// descending). Chain it after PhoneDigits so it only sees digit strings.
func PhoneRealistic(msg string) Check {
	return func(value string, _ Form) string {
		if isDegeneratePhone(value) {
			return msg
		}
		return ""
	}
}

func isDegeneratePhone(digits string) bool {
	if len(digits) < 2 {
		return false
	}
	identical, ascending, descending := true, true, true
	for i := 1; i < len(digits); i++ {
		prev, cur := digits[i-1], digits[i]
		if cur != prev {
			identical = false
		}
		if cur != prev+1 {
			ascending = false
		}
		if cur != prev-1 {
			descending = false
		}
	}
	return identical || ascending || descending
}

// IntlPhone accepts an optional leading + followed by 9 to 15 digits.
func IntlPhone(msg string) Check {
	return Pattern(intlPhoneRe, msg)
}

// OneOf requires membership in a fixed allow-list, ignoring case.
func OneOf(allowed []string, msg string) Check {
	return func(value string, _ Form) string {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return ""
			}
		}
		return msg
	}
}

// DateDMY requires a real calendar date in dd/mm/yyyy form. time.Parse
// performs true calendar arithmetic, so 29/02 only passes in leap years.
func DateDMY(msg string) Check {
	return func(value string, _ Form) string {
		if _, err := time.Parse(dayMonthYear, value); err != nil {
			return msg
		}
		return ""
	}
}

// BirthDate requires a dd/mm/yyyy date between 1900 and today implying an
// age of at least one year. Chain it after DateDMY.
func BirthDate(msg string) Check {
	return func(value string, _ Form) string {
		d, err := time.Parse(dayMonthYear, value)
		if err != nil {
			return msg
		}
		today := todayUTC()
		if d.Year() < 1900 || d.After(today) {
			return msg
		}
		if d.After(today.AddDate(-1, 0, 0)) {
			return msg
		}
		return ""
	}
}

// FutureDate requires a dd/mm/yyyy date strictly after today.
func FutureDate(msg string) Check {
	return func(value string, _ Form) string {
		d, err := time.Parse(dayMonthYear, value)
		if err != nil {
			return msg
		}
		if !d.After(todayUTC()) {
			return msg
		}
		return ""
	}
}

// PastOrToday requires a dd/mm/yyyy date no later than today.
func PastOrToday(msg string) Check {
	return func(value string, _ Form) string {
		d, err := time.Parse(dayMonthYear, value)
		if err != nil {
			return msg
		}
		if d.After(todayUTC()) {
			return msg
		}
		return ""
	}
}

// EqualsField requires the value to equal another field's trimmed value.
func EqualsField(other, msg string) Check {
	return func(value string, form Form) string {
		if value != strings.TrimSpace(form[other]) {
			return msg
		}
		return ""
	}
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// MessageOneOf builds the conventional allow-list message.
func MessageOneOf(what string, allowed []string) string {
	return fmt.Sprintf("please choose a valid %s (%s)", what, strings.Join(allowed, ", "))
}
