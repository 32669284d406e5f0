package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/geofence"
	"guard-deployment-backend/internal/repository"
)

const (
	baseSuitabilityScore = 50
	familiarityWindow    = 30 * 24 * time.Hour
	overtimeHours        = 40
)

// ScoreBreakdown is a candidate's suitability score with each signal kept
// for audit
type ScoreBreakdown struct {
	WorkerID        string   `json:"worker_id"`
	Total           float64  `json:"total"`
	Base            float64  `json:"base"`
	Proximity       float64  `json:"proximity"`
	Qualification   float64  `json:"qualification"`
	Familiarity     float64  `json:"familiarity"`
	Workload        float64  `json:"workload"`
	RestPenalty     float64  `json:"rest_penalty"`
	OvertimePenalty float64  `json:"overtime_penalty"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	WeeklyHours     float64  `json:"weekly_hours"`
	Missing         []string `json:"missing,omitempty"`
}

// Qualified reports whether the worker meets every post requirement
func (b *ScoreBreakdown) Qualified() bool {
	return len(b.Missing) == 0
}

// SuitabilityScorer scores candidate workers for a post and shift
type SuitabilityScorer struct {
	history repository.AssignmentRepositoryInterface
	policy  Policy
}

// NewSuitabilityScorer creates a new scorer
func NewSuitabilityScorer(history repository.AssignmentRepositoryInterface, policy Policy) *SuitabilityScorer {
	return &SuitabilityScorer{history: history, policy: policy}
}

// Score returns the worker's suitability in [0,100] for the shift on date.
// date is interpreted in its own location.
func (s *SuitabilityScorer) Score(ctx context.Context, worker *models.Worker, post *models.Post, shift *models.Shift, date time.Time) (*ScoreBreakdown, error) {
	day := models.DateOf(date)
	b := &ScoreBreakdown{WorkerID: worker.ID.String(), Base: baseSuitabilityScore}

	if worker.HasLocation() {
		km := geofence.HaversineMeters(
			geofence.Point{Lat: *worker.LastKnownLat, Lon: *worker.LastKnownLon},
			BoundaryOf(post).Centroid(),
		) / 1000
		km = round2(km)
		b.DistanceKm = &km
		b.Proximity = proximityPoints(km)
	}

	b.Missing = worker.MissingRequirements(post)
	switch {
	case !post.HasRequirements():
		b.Qualification = 10
	case len(b.Missing) == 0:
		b.Qualification = 15
	}

	completed, err := s.history.CountCompletedAtPost(ctx, worker.ID, post.ID, day.Add(-familiarityWindow), day)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed assignments: %w", err)
	}
	b.Familiarity = familiarityPoints(completed)

	weekly, err := s.history.SumHoursWorked(ctx, worker.ID, weekStart(day), day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weekly hours: %w", err)
	}
	b.WeeklyHours = round2(weekly)
	b.Workload = workloadPoints(weekly)
	if weekly >= overtimeHours {
		b.OvertimePenalty = 10
	}

	lastCheckout, found, err := s.history.FindLastCheckout(ctx, worker.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find last checkout: %w", err)
	}
	if found && shift != nil && shift.StartTime.On(day).Sub(lastCheckout) < s.policy.MinimumRest {
		b.RestPenalty = 20
	}

	total := b.Base + b.Proximity + b.Qualification + b.Familiarity + b.Workload - b.RestPenalty - b.OvertimePenalty
	b.Total = math.Max(0, math.Min(100, total))
	return b, nil
}

func proximityPoints(km float64) float64 {
	switch {
	case km <= 5:
		return 20
	case km <= 10:
		return 15
	case km <= 25:
		return 10
	case km <= 50:
		return 5
	}
	return 0
}

func familiarityPoints(completed int64) float64 {
	switch {
	case completed >= 5:
		return 10
	case completed >= 2:
		return 7
	case completed >= 1:
		return 4
	}
	return 0
}

func workloadPoints(hours float64) float64 {
	switch {
	case hours < 20:
		return 5
	case hours < 35:
		return 3
	case hours < 45:
		return 1
	}
	return 0
}

// weekStart returns the Monday of day's week
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// RankCandidates orders breakdowns by score, highest first. Equal scores
// are ordered by worker id so the pick never depends on input order.
func RankCandidates(candidates []*ScoreBreakdown) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Total != candidates[j].Total {
			return candidates[i].Total > candidates[j].Total
		}
		return candidates[i].WorkerID < candidates[j].WorkerID
	})
}
