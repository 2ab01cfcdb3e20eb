package model

import "time"

// Account is a console user: lab staff with a ROLE_* role, or an
// uncategorized guest.
type Account struct {
	Base
	FullName         string     `db:"full_name" json:"fullName"`
	Email            string     `db:"email" json:"email"`
	Phone            string     `db:"phone" json:"phone"`
	Password         string     `db:"-" json:"password,omitempty"`
	PasswordHash     string     `db:"password_hash" json:"-"`
	Role             string     `db:"role" json:"role"`
	Deleted          Flag       `db:"deleted" json:"deleted"`
	LoginAttempts    int        `db:"login_attempts" json:"-"`
	LastLoginAttempt *time.Time `db:"last_login_attempt" json:"-"`
	LastLoginAt      *time.Time `db:"last_login_at" json:"last_login_at"`
}

// Record interface for the list filter.

func (a *Account) SearchFields() []string {
	return []string{a.FullName, a.Email, a.Phone, a.ID.String()}
}

func (a *Account) CategoryKey() string { return a.Role }
func (a *Account) Deactivated() bool   { return a.Deleted.Bool() }
func (a *Account) FilterDate() string  { return a.CreatedAt.Format("2006-01-02") }

// CreateAccountRequest is the account creation payload. Transport-level
// shape checks live in the binding tags; the full rule chains (phone
// blacklist, confirm-password) run through internal/schema.
type CreateAccountRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Role            string `json:"role" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Form flattens the request for schema validation.
func (r *CreateAccountRequest) Form() map[string]string {
	return map[string]string{
		"fullName":        r.FullName,
		"email":           r.Email,
		"phone":           r.Phone,
		"role":            r.Role,
		"password":        r.Password,
		"confirmPassword": r.ConfirmPassword,
	}
}

// UpdateAccountRequest carries optional account edits.
type UpdateAccountRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Deleted  *Flag   `json:"deleted"`
}
