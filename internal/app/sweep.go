package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/service"
)

// SweepReport counts what one sweep pass changed
type SweepReport struct {
	Expired   int `json:"expired"`
	Escalated int `json:"escalated"`
	NoShows   int `json:"no_shows"`
}

// RunSweeps performs one pass of the approval expiry, escalation and no-show
// sweeps at now. A failing sweep does not stop the others; their errors are
// joined.
func RunSweeps(ctx context.Context, assignments service.AssignmentServiceInterface, approvals service.ApprovalServiceInterface, now time.Time) (SweepReport, error) {
	var report SweepReport
	var errs []error
	log := logger.WithContext(ctx).WithField("now", now)

	expired, err := approvals.ExpireOverdue(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("expire sweep: %w", err))
	}
	report.Expired = expired

	escalated, err := approvals.EscalateOverdue(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("escalation sweep: %w", err))
	}
	report.Escalated = escalated

	noShows, err := assignments.SweepNoShows(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("no-show sweep: %w", err))
	}
	report.NoShows = noShows

	log.WithFields(map[string]interface{}{
		"expired":   report.Expired,
		"escalated": report.Escalated,
		"no_shows":  report.NoShows,
	}).Info("sweep pass finished")
	return report, errors.Join(errs...)
}
