package model

import "github.com/google/uuid"

// Test order lifecycle.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order priorities.
const (
	OrderPriorityRoutine = "routine"
	OrderPriorityUrgent  = "urgent"
	OrderPriorityStat    = "stat"
)

// TestOrder is a requested panel of blood tests for one patient.
type TestOrder struct {
	Base
	PatientID   uuid.UUID `db:"patient_id" json:"patientId"`
	PatientName string    `db:"patient_name" json:"patientName"`
	Panel       string    `db:"panel" json:"panel"`
	Status      string    `db:"status" json:"status"`
	Priority    string    `db:"priority" json:"priority"`
	Remarks     string    `db:"remarks" json:"remarks"`
	CreatedBy   string    `db:"created_by" json:"createdBy"`
	AssignedTo  string    `db:"assigned_to" json:"assignedTo"`
}

func (o *TestOrder) SearchFields() []string {
	return []string{o.PatientName, o.Panel, o.CreatedBy, o.AssignedTo, o.ID.String()}
}

// Orders filter by status through the category dropdown; they have no
// deactivated flag of their own.
func (o *TestOrder) CategoryKey() string { return o.Status }
func (o *TestOrder) Deactivated() bool   { return false }
func (o *TestOrder) FilterDate() string  { return o.CreatedAt.Format("2006-01-02") }

type CreateTestOrderRequest struct {
	PatientID  string `json:"patientId" binding:"required,uuid"`
	Panel      string `json:"panel" binding:"required"`
	Priority   string `json:"priority" binding:"required"`
	Remarks    string `json:"remarks"`
	AssignedTo string `json:"assignedTo"`
}

func (r *CreateTestOrderRequest) Form() map[string]string {
	return map[string]string{
		"status":   OrderStatusPending,
		"priority": r.Priority,
		"remarks":  r.Remarks,
	}
}

type UpdateTestOrderRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	Remarks    *string `json:"remarks"`
	AssignedTo *string `json:"assignedTo"`
}
