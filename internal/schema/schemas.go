// Package schema defines the form validation schemas for each record family
// the admin console edits. The engine lives in pkg/validation; this package
// only declares the per-field rule chains and allow-lists.
package schema

import (
	"regexp"

	"github.com/haemolab/lab-api/internal/label"
	"github.com/haemolab/lab-api/pkg/validation"
)

// Allow-lists for enum-valued fields.
var (
	Roles          = []string{label.RoleAdmin, label.RoleDoctor, label.RoleTechnician, label.RoleStaff}
	ReagentTypes   = []string{"hematology", "biochemistry", "immunology", "coagulation"}
	InstrumentKind = []string{"analyzer", "centrifuge", "microscope", "incubator"}
	OrderStatuses  = []string{"pending", "processing", "completed", "cancelled"}
	OrderPriority  = []string{"routine", "urgent", "stat"}
)

// Lot codes: literal LOT-, four digits, dash, six alphanumerics.
var lotNumberRe = regexp.MustCompile(`^LOT-\d{4}-[A-Za-z0-9]{6}$`)

// gender validates through the normalizer so accepted spellings
// (NỮ, nu, f, ...) pass while anything else is a reportable error.
func gender(msg string) validation.Check {
	return func(value string, _ validation.Form) string {
		if !label.IsGenderKey(label.NormalizeGender(value)) {
			return msg
		}
		return ""
	}
}

// Account validates admin-console account submissions.
func Account() *validation.Schema {
	return validation.NewSchema().
		Field("fullName",
			validation.Required("full name is required"),
			validation.Length(2, 100, "full name must be 2-100 characters")).
		Field("email",
			validation.Required("email is required"),
			validation.Email("email must be a valid address")).
		Field("phone",
			validation.Required("phone is required"),
			validation.PhoneDigits("phone must be 10 or 11 digits"),
			validation.PhoneRealistic("phone must be a valid number")).
		Field("role",
			validation.Required("role is required"),
			validation.OneOf(Roles, validation.MessageOneOf("role", Roles))).
		Field("password",
			validation.Required("password is required"),
			validation.Length(8, 72, "password must be 8-72 characters")).
		Field("confirmPassword",
			validation.Required("password confirmation is required"),
			validation.EqualsField("password", "passwords do not match"))
}

// Patient validates patient intake and edit forms.
func Patient() *validation.Schema {
	return validation.NewSchema().
		Field("fullName",
			validation.Required("full name is required"),
			validation.Length(2, 100, "full name must be 2-100 characters")).
		Field("gender",
			validation.Required("gender is required"),
			gender("please choose a valid gender")).
		Field("dateOfBirth",
			validation.Required("date of birth is required"),
			validation.DateDMY("date of birth must be a valid dd/mm/yyyy date"),
			validation.BirthDate("date of birth must be between 1900 and one year ago")).
		Field("phone",
			validation.Required("phone is required"),
			validation.PhoneDigits("phone must be 10 or 11 digits"),
			validation.PhoneRealistic("phone must be a valid number")).
		Field("address",
			validation.Required("address is required"),
			validation.Length(10, 255, "address must be 10-255 characters")).
		Field("contactNumber",
			validation.Optional(validation.IntlPhone("contact number must be a valid international number"))).
		Field("lastTestDate",
			validation.Optional(
				validation.DateDMY("last test date must be a valid dd/mm/yyyy date"),
				validation.PastOrToday("last test date cannot be in the future")))
}

// Reagent validates reagent catalog entries.
func Reagent() *validation.Schema {
	return validation.NewSchema().
		Field("name",
			validation.Required("reagent name is required"),
			validation.Length(5, 50, "reagent name must be 5-50 characters")).
		Field("vendor",
			validation.Required("vendor is required"),
			validation.Length(5, 50, "vendor must be 5-50 characters")).
		Field("reagentType",
			validation.Required("reagent type is required"),
			validation.OneOf(ReagentTypes, validation.MessageOneOf("reagent type", ReagentTypes))).
		Field("lotNumber",
			validation.Required("lot number is required"),
			validation.Pattern(lotNumberRe, "lot number must match LOT-0000-XXXXXX")).
		Field("expiryDate",
			validation.Required("expiry date is required"),
			validation.DateDMY("expiry date must be a valid dd/mm/yyyy date"),
			validation.FutureDate("expiry date must be in the future")).
		Field("remarks",
			validation.Optional(validation.Length(5, 50, "remarks must be 5-50 characters")))
}

// Instrument validates instrument registry entries.
func Instrument() *validation.Schema {
	return validation.NewSchema().
		Field("name",
			validation.Required("instrument name is required"),
			validation.Length(5, 50, "instrument name must be 5-50 characters")).
		Field("instrumentType",
			validation.Required("instrument type is required"),
			validation.OneOf(InstrumentKind, validation.MessageOneOf("instrument type", InstrumentKind))).
		Field("vendor",
			validation.Required("vendor is required"),
			validation.Length(5, 50, "vendor must be 5-50 characters")).
		Field("lastCalibrated",
			validation.Optional(
				validation.DateDMY("calibration date must be a valid dd/mm/yyyy date"),
				validation.PastOrToday("calibration date cannot be in the future")))
}

// TestOrder validates test order submissions.
func TestOrder() *validation.Schema {
	return validation.NewSchema().
		Field("status",
			validation.Required("status is required"),
			validation.OneOf(OrderStatuses, validation.MessageOneOf("status", OrderStatuses))).
		Field("priority",
			validation.Required("priority is required"),
			validation.OneOf(OrderPriority, validation.MessageOneOf("priority", OrderPriority))).
		Field("remarks",
			validation.Optional(validation.Length(5, 50, "remarks must be 5-50 characters")))
}
