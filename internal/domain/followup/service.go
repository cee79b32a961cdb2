package followup

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusInManagement: true, StatusScheduled: true,
	StatusDone: true, StatusCancelled: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, f *Followup) error {
	if f.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if f.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if f.RequestDate.IsZero() {
		return fmt.Errorf("request_date is required")
	}
	if f.Status == "" {
		f.Status = StatusPending
	}
	if !validStatuses[f.Status] {
		return fmt.Errorf("invalid status: %s", f.Status)
	}
	return s.repo.Create(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Followup, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, f *Followup) error {
	if f.Status != "" && !validStatuses[f.Status] {
		return fmt.Errorf("invalid status: %s", f.Status)
	}
	return s.repo.Update(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Followup, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Followup, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Followup, int, error) {
	if !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.ListByStatus(ctx, status, limit, offset)
}

func (s *Service) StatusCounts(ctx context.Context) ([]*StatusCount, error) {
	return s.repo.CountByStatus(ctx)
}
