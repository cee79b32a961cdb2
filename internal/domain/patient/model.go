package patient

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle statuses for a patient record.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusDeceased = "DECEASED"
)

// Patient maps to the patients table.
type Patient struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	DocumentType   string     `db:"document_type" json:"document_type"`
	DocumentNumber string     `db:"document_number" json:"document_number"`
	FullName       string     `db:"full_name" json:"full_name"`
	BirthDate      *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Gender         *string    `db:"gender" json:"gender,omitempty"`
	Phone          *string    `db:"phone" json:"phone,omitempty"`
	EPS            *string    `db:"eps" json:"eps,omitempty"`
	Regimen        *string    `db:"regimen" json:"regimen,omitempty"`
	City           *string    `db:"city" json:"city,omitempty"`
	Department     *string    `db:"department" json:"department,omitempty"`
	Address        *string    `db:"address" json:"address,omitempty"`
	Status         string     `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
