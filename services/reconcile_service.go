package services

import (
	"context"
	"errors"
	"fmt"

	"jobswipe_server/models"
	"jobswipe_server/store"

	"go.uber.org/zap"
)

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	Scanned  int `json:"scanned"`
	Missing  int `json:"missing"`
	Repaired int `json:"repaired"`
	Failed   int `json:"failed"`
}

// ReconcileService finds positive interactions that never got their match,
// typically because the process died between the two writes or the candidate
// had no profile yet, and derives the missing matches.
type ReconcileService struct {
	Interactions store.InteractionRepository
	Matches      *MatchService
	Log          *zap.Logger
}

// Run scans every positive interaction. With dryRun set nothing is written
// and Repaired stays zero. A missing profile counts as Failed and does not
// stop the pass; any other store error aborts it.
func (rs *ReconcileService) Run(ctx context.Context, dryRun bool) (ReconcileReport, error) {
	var report ReconcileReport

	err := rs.Interactions.ScanPositive(ctx, func(i models.Interaction) error {
		report.Scanned++

		_, err := rs.Matches.GetMatch(ctx, i.JobID, i.UserID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to fetch match for job %s, candidate %s: %w", i.JobID, i.UserID, err)
		}

		report.Missing++
		fields := []zap.Field{zap.String("jobId", i.JobID), zap.String("candidateId", i.UserID)}
		if dryRun {
			rs.Log.Info("match missing", fields...)
			return nil
		}

		_, err = rs.Matches.DeriveMatch(ctx, i.JobID, i.UserID)
		switch {
		case err == nil:
			report.Repaired++
			rs.Log.Info("match repaired", fields...)
		case errors.Is(err, models.ErrAlreadyMatched):
			// Created concurrently since the lookup above.
			report.Missing--
		case errors.Is(err, models.ErrProfileNotFound):
			report.Failed++
			rs.Log.Warn("cannot repair match without profile", fields...)
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("reconcile aborted after %d interactions: %w", report.Scanned, err)
	}

	rs.Log.Info("reconcile finished",
		zap.Bool("dryRun", dryRun),
		zap.Int("scanned", report.Scanned),
		zap.Int("missing", report.Missing),
		zap.Int("repaired", report.Repaired),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}
