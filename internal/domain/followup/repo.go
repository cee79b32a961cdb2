package followup

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists followups.
type Repository interface {
	Create(ctx context.Context, f *Followup) error
	GetByID(ctx context.Context, id uuid.UUID) (*Followup, error)
	Update(ctx context.Context, f *Followup) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Followup, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Followup, int, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Followup, int, error)
	CountByStatus(ctx context.Context) ([]*StatusCount, error)
}
