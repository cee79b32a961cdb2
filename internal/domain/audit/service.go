package audit

import (
	"context"

	"github.com/rs/zerolog"
)

// Service runs the integrity scan and the remediation operations. Scans are
// read-only and safe to run at any frequency; remediation runs are
// single-shot batches with no persisted in-progress state. Concurrent
// remediation calls over overlapping clusters can race — there is no
// cross-request locking, an accepted limitation for human-paced usage.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Scan sweeps the store and returns the current stats and duplicate
// clusters. The result is consistent only as of query time.
func (s *Service) Scan(ctx context.Context) (*Report, error) {
	report := &Report{Duplicates: []*DuplicateCluster{}}

	var err error
	if report.Stats.Total, err = s.repo.CountFollowups(ctx); err != nil {
		return nil, err
	}
	if report.Stats.Patients, err = s.repo.CountPatients(ctx); err != nil {
		return nil, err
	}
	if report.Stats.MissingEPS, err = s.repo.CountMissingEPS(ctx); err != nil {
		return nil, err
	}
	if report.Stats.MissingCUPS, err = s.repo.CountMissingCUPS(ctx); err != nil {
		return nil, err
	}
	if report.Stats.InvertedDates, err = s.repo.CountInvertedDates(ctx); err != nil {
		return nil, err
	}
	clusters, err := s.repo.ListDuplicateClusters(ctx)
	if err != nil {
		return nil, err
	}
	if clusters != nil {
		report.Duplicates = clusters
	}
	return report, nil
}

// FixInvertedDates swaps request and appointment dates on every followup
// where the appointment precedes the request. The swap is a heuristic: it
// assumes the two dates were transposed at entry, not that either value is
// independently wrong. Idempotent — a second run finds nothing to swap.
func (s *Service) FixInvertedDates(ctx context.Context) (int, error) {
	fixed, err := s.repo.SwapInvertedDates(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("fixed", fixed).Msg("inverted dates swapped")
	return fixed, nil
}

// MergeDuplicates absorbs each duplicate cluster into its survivor. A
// cluster that fails merges nothing (its transaction rolls back) and is
// counted as failed; the remaining clusters still proceed.
func (s *Service) MergeDuplicates(ctx context.Context) (*MergeResult, error) {
	clusters, err := s.repo.ListDuplicateClusters(ctx)
	if err != nil {
		return nil, err
	}

	res := &MergeResult{}
	for _, cluster := range clusters {
		merged, err := s.repo.MergeCluster(ctx, cluster)
		if err != nil {
			s.log.Warn().Err(err).
				Str("cedula", cluster.Cedula).
				Str("fecha", cluster.Fecha).
				Msg("cluster merge failed")
			res.Failed++
			continue
		}
		res.Clusters++
		res.Merged += merged
	}
	s.log.Info().
		Int("clusters", res.Clusters).
		Int("merged", res.Merged).
		Int("failed", res.Failed).
		Msg("duplicate merge finished")
	return res, nil
}

// PurgeDuplicates keeps each cluster's survivor and hard-deletes the rest
// without copying any data. With no duplicates present it is a no-op
// success, never an error.
func (s *Service) PurgeDuplicates(ctx context.Context) (*PurgeResult, error) {
	clusters, err := s.repo.ListDuplicateClusters(ctx)
	if err != nil {
		return nil, err
	}

	res := &PurgeResult{}
	for _, cluster := range clusters {
		deleted, err := s.repo.PurgeCluster(ctx, cluster)
		if err != nil {
			s.log.Warn().Err(err).
				Str("cedula", cluster.Cedula).
				Str("fecha", cluster.Fecha).
				Msg("cluster purge failed")
			res.Failed++
			continue
		}
		res.Clusters++
		res.Deleted += deleted
	}
	s.log.Info().
		Int("clusters", res.Clusters).
		Int("deleted", res.Deleted).
		Int("failed", res.Failed).
		Msg("duplicate purge finished")
	return res, nil
}
