package audit

import (
	"time"

	"github.com/google/uuid"
)

// Stats is the dashboard snapshot produced by a scan. Counts only,
// recomputed per request. The JSON keys match what the dashboard consumes.
type Stats struct {
	Total         int `json:"total"`
	Patients      int `json:"pacientes"`
	MissingEPS    int `json:"sin_eps"`
	MissingCUPS   int `json:"sin_cups"`
	InvertedDates int `json:"fechas_malas"`
}

// DuplicateCluster is a derived grouping of followups sharing
// (patient, request date, service name). Never persisted; recomputed on
// each scan. The natural-key fields stay off the wire.
type DuplicateCluster struct {
	PatientID   uuid.UUID `json:"-"`
	ServiceName string    `json:"-"`
	RequestDate time.Time `json:"-"`

	Cedula string `json:"cedula"`
	Nombre string `json:"nombre"`
	Fecha  string `json:"fecha"`
	Count  int    `json:"count"`
}

// Report bundles a scan's stats with its duplicate clusters.
type Report struct {
	Stats      Stats               `json:"stats"`
	Duplicates []*DuplicateCluster `json:"duplicates"`
}

// MergeResult summarizes a merge run over all duplicate clusters.
type MergeResult struct {
	Clusters int `json:"clusters"`
	Merged   int `json:"merged"`
	Failed   int `json:"failed"`
}

// PurgeResult summarizes a purge run over all duplicate clusters.
type PurgeResult struct {
	Clusters int `json:"clusters"`
	Deleted  int `json:"deleted"`
	Failed   int `json:"failed"`
}
