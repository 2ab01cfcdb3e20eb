package model

// Instrument is a registered lab instrument.
type Instrument struct {
	Base
	Name           string `db:"name" json:"name"`
	InstrumentType string `db:"instrument_type" json:"instrumentType"`
	Vendor         string `db:"vendor" json:"vendor"`
	SerialNumber   string `db:"serial_number" json:"serialNumber"`
	LastCalibrated string `db:"last_calibrated" json:"lastCalibrated"`
	Deleted        Flag   `db:"deleted" json:"deleted"`
}

func (i *Instrument) SearchFields() []string {
	return []string{i.Name, i.Vendor, i.SerialNumber, i.ID.String()}
}

func (i *Instrument) CategoryKey() string { return i.InstrumentType }
func (i *Instrument) Deactivated() bool   { return i.Deleted.Bool() }
func (i *Instrument) FilterDate() string  { return i.LastCalibrated }

type CreateInstrumentRequest struct {
	Name           string `json:"name" binding:"required"`
	InstrumentType string `json:"instrumentType" binding:"required"`
	Vendor         string `json:"vendor" binding:"required"`
	SerialNumber   string `json:"serialNumber"`
	LastCalibrated string `json:"lastCalibrated"`
}

func (r *CreateInstrumentRequest) Form() map[string]string {
	return map[string]string{
		"name":           r.Name,
		"instrumentType": r.InstrumentType,
		"vendor":         r.Vendor,
		"lastCalibrated": r.LastCalibrated,
	}
}

type UpdateInstrumentRequest struct {
	Name           *string `json:"name"`
	InstrumentType *string `json:"instrumentType"`
	Vendor         *string `json:"vendor"`
	SerialNumber   *string `json:"serialNumber"`
	LastCalibrated *string `json:"lastCalibrated" binding:"omitempty,dmy_date"`
	Deleted        *Flag   `json:"deleted"`
}
