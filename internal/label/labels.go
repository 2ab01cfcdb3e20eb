package label

// Account status keys.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Role keys as stored on accounts. Uncategorized accounts (no ROLE_ prefix)
// bucket as guests in the filter layer.
const (
	RoleAdmin      = "ROLE_ADMIN"
	RoleDoctor     = "ROLE_DOCTOR"
	RoleTechnician = "ROLE_TECHNICIAN"
	RoleStaff      = "ROLE_STAFF"
	RoleGuest      = "guest"
)

var genderLabels = map[string]string{
	GenderMale:   "Nam",
	GenderFemale: "Nữ",
	GenderOther:  "Khác",
}

var statusLabels = map[string]string{
	StatusActive:   "Đang hoạt động",
	StatusInactive: "Ngừng hoạt động",
}

var roleLabels = map[string]string{
	RoleAdmin:      "Quản trị viên",
	RoleDoctor:     "Bác sĩ",
	RoleTechnician: "Kỹ thuật viên",
	RoleStaff:      "Nhân viên",
	RoleGuest:      "Khách",
}

func lookup(table map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if label, ok := table[key]; ok {
		return label
	}
	// Unknown keys pass through so the UI still renders something.
	return key
}

// GenderLabel returns the display label for a canonical gender key.
func GenderLabel(key string) string { return lookup(genderLabels, key) }

// StatusLabel returns the display label for an account status key.
func StatusLabel(key string) string { return lookup(statusLabels, key) }

// RoleLabel returns the display label for a role key.
func RoleLabel(key string) string { return lookup(roleLabels, key) }
