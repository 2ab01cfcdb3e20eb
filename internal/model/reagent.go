package model

// Reagent is a catalog entry for a test reagent lot.
type Reagent struct {
	Base
	Name        string `db:"name" json:"name"`
	Vendor      string `db:"vendor" json:"vendor"`
	ReagentType string `db:"reagent_type" json:"reagentType"`
	LotNumber   string `db:"lot_number" json:"lotNumber"`
	ExpiryDate  string `db:"expiry_date" json:"expiryDate"`
	Remarks     string `db:"remarks" json:"remarks"`
	Deleted     Flag   `db:"deleted" json:"deleted"`
}

func (r *Reagent) SearchFields() []string {
	return []string{r.Name, r.Vendor, r.LotNumber, r.ID.String()}
}

func (r *Reagent) CategoryKey() string { return r.ReagentType }
func (r *Reagent) Deactivated() bool   { return r.Deleted.Bool() }
func (r *Reagent) FilterDate() string  { return r.ExpiryDate }

type CreateReagentRequest struct {
	Name        string `json:"name" binding:"required"`
	Vendor      string `json:"vendor" binding:"required"`
	ReagentType string `json:"reagentType" binding:"required"`
	LotNumber   string `json:"lotNumber" binding:"required"`
	ExpiryDate  string `json:"expiryDate" binding:"required"`
	Remarks     string `json:"remarks"`
}

func (r *CreateReagentRequest) Form() map[string]string {
	return map[string]string{
		"name":        r.Name,
		"vendor":      r.Vendor,
		"reagentType": r.ReagentType,
		"lotNumber":   r.LotNumber,
		"expiryDate":  r.ExpiryDate,
		"remarks":     r.Remarks,
	}
}

type UpdateReagentRequest struct {
	Name        *string `json:"name"`
	Vendor      *string `json:"vendor"`
	ReagentType *string `json:"reagentType"`
	LotNumber   *string `json:"lotNumber"`
	ExpiryDate  *string `json:"expiryDate" binding:"omitempty,dmy_date"`
	Remarks     *string `json:"remarks"`
	Deleted     *Flag   `json:"deleted"`
}
