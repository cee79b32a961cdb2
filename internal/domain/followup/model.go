package followup

import (
	"time"

	"github.com/google/uuid"
)

// Statuses a followup moves through.
const (
	StatusPending      = "PENDING"
	StatusInManagement = "IN_MANAGEMENT"
	StatusScheduled    = "SCHEDULED"
	StatusDone         = "DONE"
	StatusCancelled    = "CANCELLED"
)

// Followup maps to the followups table. A followup tracks one clinical
// service request for a patient from referral through completion.
type Followup struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	ServiceName     string     `db:"service_name" json:"service_name"`
	CUPSCode        *string    `db:"cups_code" json:"cups_code,omitempty"`
	Status          string     `db:"status" json:"status"`
	RequestDate     time.Time  `db:"request_date" json:"request_date"`
	AppointmentDate *time.Time `db:"appointment_date" json:"appointment_date,omitempty"`
	Observations    *string    `db:"observations" json:"observations,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// StatusCount is one row of the dashboard status breakdown.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}
