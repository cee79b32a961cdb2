package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var validStatuses = map[string]bool{
	StatusActive: true, StatusInactive: true, StatusDeceased: true,
}

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.DocumentType == "" || p.DocumentNumber == "" {
		return fmt.Errorf("document_type and document_number are required")
	}
	if p.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if !validStatuses[p.Status] {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	if existing, err := s.repo.GetByDocument(ctx, p.DocumentType, p.DocumentNumber); err == nil && existing != nil {
		return fmt.Errorf("patient with document %s %s already exists", p.DocumentType, p.DocumentNumber)
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByDocument(ctx context.Context, docType, docNumber string) (*Patient, error) {
	return s.repo.GetByDocument(ctx, docType, docNumber)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.Status != "" && !validStatuses[p.Status] {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.Search(ctx, query, limit, offset)
}

// Import creates patients in bulk, skipping rows whose document number is
// already registered. Rows that fail validation or storage are counted but
// do not abort the run.
func (s *Service) Import(ctx context.Context, rows []*Patient) (*ImportResult, error) {
	res := &ImportResult{}
	for _, p := range rows {
		if p.DocumentType == "" || p.DocumentNumber == "" || p.FullName == "" {
			res.Failed++
			continue
		}
		if existing, err := s.repo.GetByDocument(ctx, p.DocumentType, p.DocumentNumber); err == nil && existing != nil {
			res.Skipped++
			continue
		}
		if p.Status == "" {
			p.Status = StatusActive
		}
		if err := s.repo.Create(ctx, p); err != nil {
			s.log.Warn().Err(err).
				Str("document_number", p.DocumentNumber).
				Msg("import row failed")
			res.Failed++
			continue
		}
		res.Imported++
	}
	s.log.Info().
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("patient import finished")
	return res, nil
}
