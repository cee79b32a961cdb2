package followup

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const followupCols = `id, patient_id, service_name, cups_code, status,
	request_date, appointment_date, observations, created_at, updated_at`

func scanFollowup(row pgx.Row) (*Followup, error) {
	var f Followup
	err := row.Scan(&f.ID, &f.PatientID, &f.ServiceName, &f.CUPSCode, &f.Status,
		&f.RequestDate, &f.AppointmentDate, &f.Observations, &f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

func (r *repoPG) Create(ctx context.Context, f *Followup) error {
	f.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO followups (id, patient_id, service_name, cups_code, status,
			request_date, appointment_date, observations)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		f.ID, f.PatientID, f.ServiceName, f.CUPSCode, f.Status,
		f.RequestDate, f.AppointmentDate, f.Observations)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Followup, error) {
	return scanFollowup(r.pool.QueryRow(ctx, `SELECT `+followupCols+` FROM followups WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, f *Followup) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE followups SET service_name=$2, cups_code=$3, status=$4,
			request_date=$5, appointment_date=$6, observations=$7, updated_at=NOW()
		WHERE id = $1`,
		f.ID, f.ServiceName, f.CUPSCode, f.Status,
		f.RequestDate, f.AppointmentDate, f.Observations)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM followups WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Followup, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM followups`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+followupCols+` FROM followups ORDER BY request_date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Followup, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM followups WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+followupCols+` FROM followups
		WHERE patient_id = $1 ORDER BY request_date DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Followup, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM followups WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+followupCols+` FROM followups
		WHERE status = $1 ORDER BY request_date DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) CountByStatus(ctx context.Context) ([]*StatusCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM followups GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var counts []*StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, &sc)
	}
	return counts, rows.Err()
}

func collect(rows pgx.Rows, total int) ([]*Followup, int, error) {
	var items []*Followup
	for rows.Next() {
		f, err := scanFollowup(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, rows.Err()
}
