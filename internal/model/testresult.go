package model

import (
	"time"

	"github.com/google/uuid"
)

// Result flags relative to the reference range.
const (
	ResultFlagNormal = "normal"
	ResultFlagLow    = "low"
	ResultFlagHigh   = "high"
)

// TestResult is one measured parameter of a completed order.
type TestResult struct {
	Base
	OrderID        uuid.UUID  `db:"order_id" json:"orderId"`
	PatientID      uuid.UUID  `db:"patient_id" json:"patientId"`
	Parameter      string     `db:"parameter" json:"parameter"`
	Value          float64    `db:"value" json:"value"`
	Unit           string     `db:"unit" json:"unit"`
	ReferenceRange string     `db:"reference_range" json:"referenceRange"`
	ResultFlag     string     `db:"result_flag" json:"resultFlag"`
	ReleasedAt     *time.Time `db:"released_at" json:"releasedAt"`
}

// CreateTestResultRequest carries one measured parameter. The order ID
// comes from the request path, not the body.
type CreateTestResultRequest struct {
	OrderID        string  `json:"-"`
	Parameter      string  `json:"parameter" binding:"required"`
	Value          float64 `json:"value" binding:"required"`
	Unit           string  `json:"unit" binding:"required"`
	ReferenceRange string  `json:"referenceRange"`
	ResultFlag     string  `json:"resultFlag" binding:"omitempty,oneof=normal low high"`
}
