package model

// Patient is a portal patient record. Date-valued fields stay in their
// dd/mm/yyyy string form: they arrive that way from the intake forms and
// legacy imports, and the filter layer owns the permissive parsing.
type Patient struct {
	Base
	FullName      string `db:"full_name" json:"fullName"`
	Gender        string `db:"gender" json:"gender"`
	DateOfBirth   string `db:"date_of_birth" json:"dateOfBirth"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
	Address       string `db:"address" json:"address"`
	ContactNumber string `db:"contact_number" json:"contactNumber"`
	LastTestDate  string `db:"last_test_date" json:"lastTestDate"`
	Deleted       Flag   `db:"deleted" json:"deleted"`
}

func (p *Patient) SearchFields() []string {
	return []string{p.FullName, p.Email, p.Phone, p.ID.String(), p.Address}
}

func (p *Patient) CategoryKey() string { return p.Gender }
func (p *Patient) Deactivated() bool   { return p.Deleted.Bool() }
func (p *Patient) FilterDate() string  { return p.LastTestDate }

type CreatePatientRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactNumber string `json:"contactNumber"`
	LastTestDate  string `json:"lastTestDate"`
}

func (r *CreatePatientRequest) Form() map[string]string {
	return map[string]string{
		"fullName":      r.FullName,
		"gender":        r.Gender,
		"dateOfBirth":   r.DateOfBirth,
		"phone":         r.Phone,
		"address":       r.Address,
		"contactNumber": r.ContactNumber,
		"lastTestDate":  r.LastTestDate,
	}
}

type UpdatePatientRequest struct {
	FullName      *string `json:"fullName"`
	Gender        *string `json:"gender"`
	DateOfBirth   *string `json:"dateOfBirth" binding:"omitempty,dmy_date"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
	LastTestDate  *string `json:"lastTestDate" binding:"omitempty,dmy_date"`
	Deleted       *Flag   `json:"deleted"`
}
