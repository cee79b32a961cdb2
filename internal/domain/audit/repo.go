package audit

import "context"

// Repository exposes the integrity queries and remediation writes the audit
// engine needs over the patient and followup tables.
type Repository interface {
	CountFollowups(ctx context.Context) (int, error)
	CountPatients(ctx context.Context) (int, error)
	CountMissingEPS(ctx context.Context) (int, error)
	CountMissingCUPS(ctx context.Context) (int, error)
	CountInvertedDates(ctx context.Context) (int, error)
	ListDuplicateClusters(ctx context.Context) ([]*DuplicateCluster, error)

	// SwapInvertedDates swaps request and appointment dates on every row
	// where the appointment precedes the request, returning rows changed.
	SwapInvertedDates(ctx context.Context) (int, error)

	// MergeCluster absorbs the cluster's donor rows into its survivor and
	// deletes them, all in one transaction. Returns donors removed.
	MergeCluster(ctx context.Context, cluster *DuplicateCluster) (int, error)

	// PurgeCluster deletes every member but the survivor without copying
	// any data. Returns rows deleted.
	PurgeCluster(ctx context.Context, cluster *DuplicateCluster) (int, error)
}
