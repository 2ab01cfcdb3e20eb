// Package validation implements declarative form validation: named schemas
// of per-field rule chains over string-valued submissions. Validation is
// whole-object with fail-fast per field: every field is checked, but only
// the first failing rule of a field is reported.
package validation

import "strings"

// Form is a flat form submission, field name to raw input value.
type Form map[string]string

// Errors maps field names to the first failing rule's message.
type Errors map[string]string

// Has reports whether the named field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Check inspects one field value and returns an error message, or "" when
// the value passes. The whole form is available for cross-field rules.
type Check func(value string, form Form) string

type fieldChain struct {
	name   string
	checks []Check
}

// Schema is an ordered collection of field rule chains.
type Schema struct {
	fields []fieldChain
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Field appends a rule chain for one field. Checks run in the given order
// and the first failure short-circuits the rest of that field's chain.
func (s *Schema) Field(name string, checks ...Check) *Schema {
	s.fields = append(s.fields, fieldChain{name: name, checks: checks})
	return s
}

// Validate evaluates every field chain against form. On success it returns
// the trimmed form restricted to the schema's fields; on failure it returns
// the field→message map and a nil form. It never panics and never stops at
// the first invalid field.
func (s *Schema) Validate(form Form) (Form, Errors) {
	cleaned := make(Form, len(s.fields))
	errs := Errors{}

	for _, fc := range s.fields {
		value := strings.TrimSpace(form[fc.name])
		cleaned[fc.name] = value

		for _, check := range fc.checks {
			if msg := check(value, form); msg != "" {
				errs[fc.name] = msg
				break
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cleaned, nil
}
