package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) CountFollowups(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM followups`).Scan(&n)
	return n, err
}

func (r *repoPG) CountPatients(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&n)
	return n, err
}

func (r *repoPG) CountMissingEPS(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patients WHERE eps IS NULL OR eps = ''`).Scan(&n)
	return n, err
}

func (r *repoPG) CountMissingCUPS(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM followups WHERE cups_code IS NULL OR cups_code = ''`).Scan(&n)
	return n, err
}

func (r *repoPG) CountInvertedDates(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM followups
		WHERE appointment_date IS NOT NULL AND appointment_date < request_date`).Scan(&n)
	return n, err
}

func (r *repoPG) ListDuplicateClusters(ctx context.Context) ([]*DuplicateCluster, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT f.patient_id, f.service_name, f.request_date,
			p.document_number, p.full_name, COUNT(*)
		FROM followups f
		JOIN patients p ON p.id = f.patient_id
		GROUP BY f.patient_id, f.service_name, f.request_date, p.document_number, p.full_name
		HAVING COUNT(*) > 1
		ORDER BY p.full_name, f.request_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clusters []*DuplicateCluster
	for rows.Next() {
		var c DuplicateCluster
		if err := rows.Scan(&c.PatientID, &c.ServiceName, &c.RequestDate,
			&c.Cedula, &c.Nombre, &c.Count); err != nil {
			return nil, err
		}
		c.Fecha = c.RequestDate.Format("2006-01-02")
		clusters = append(clusters, &c)
	}
	return clusters, rows.Err()
}

func (r *repoPG) SwapInvertedDates(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE followups
		SET request_date = appointment_date,
			appointment_date = request_date,
			updated_at = NOW()
		WHERE appointment_date IS NOT NULL AND appointment_date < request_date`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

type clusterMember struct {
	ID              uuid.UUID
	CUPSCode        *string
	AppointmentDate *time.Time
	Observations    *string
}

func (r *repoPG) MergeCluster(ctx context.Context, cluster *DuplicateCluster) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Oldest first; the survivor is the last member of the list.
	rows, err := tx.Query(ctx, `
		SELECT id, cups_code, appointment_date, observations
		FROM followups
		WHERE patient_id = $1 AND request_date = $2 AND service_name = $3
		ORDER BY updated_at ASC, id ASC
		FOR UPDATE`,
		cluster.PatientID, cluster.RequestDate, cluster.ServiceName)
	if err != nil {
		return 0, err
	}

	var members []*clusterMember
	for rows.Next() {
		var m clusterMember
		if err := rows.Scan(&m.ID, &m.CUPSCode, &m.AppointmentDate, &m.Observations); err != nil {
			rows.Close()
			return 0, err
		}
		members = append(members, &m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(members) < 2 {
		return 0, nil
	}

	survivor := members[len(members)-1]
	donors := members[:len(members)-1]

	// Donor data fills survivor gaps; the survivor keeps what it already has.
	for i := len(donors) - 1; i >= 0; i-- {
		d := donors[i]
		if isEmpty(survivor.CUPSCode) && !isEmpty(d.CUPSCode) {
			survivor.CUPSCode = d.CUPSCode
		}
		if survivor.AppointmentDate == nil && d.AppointmentDate != nil {
			survivor.AppointmentDate = d.AppointmentDate
		}
	}

	// Observations from every member, oldest first, so the survivor's own
	// most recent notes land at the end.
	var notes string
	for _, m := range members {
		if isEmpty(m.Observations) {
			continue
		}
		if notes != "" {
			notes += "\n"
		}
		notes += *m.Observations
	}
	if notes != "" {
		survivor.Observations = &notes
	}

	if _, err := tx.Exec(ctx, `
		UPDATE followups
		SET cups_code=$2, appointment_date=$3, observations=$4, updated_at=NOW()
		WHERE id = $1`,
		survivor.ID, survivor.CUPSCode, survivor.AppointmentDate, survivor.Observations); err != nil {
		return 0, err
	}

	for _, d := range donors {
		if _, err := tx.Exec(ctx, `DELETE FROM followups WHERE id = $1`, d.ID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(donors), nil
}

func (r *repoPG) PurgeCluster(ctx context.Context, cluster *DuplicateCluster) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM followups
		WHERE patient_id = $1 AND request_date = $2 AND service_name = $3
			AND id <> (
				SELECT id FROM followups
				WHERE patient_id = $1 AND request_date = $2 AND service_name = $3
				ORDER BY updated_at DESC, id DESC
				LIMIT 1)`,
		cluster.PatientID, cluster.RequestDate, cluster.ServiceName)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}
