package service

import (
	"context"
	"errors"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/geofence"
	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/repository"

	"github.com/google/uuid"
)

// CheckInCollaborators are the read sources the pipeline consults.
// SitesFallback is optional.
type CheckInCollaborators struct {
	Sites            repository.SiteMembershipLookup
	SitesFallback    repository.SiteMembershipLookup
	Schedule         repository.ShiftScheduleLookup
	Attendance       repository.AttendanceHistoryLookup
	PostAssignments  repository.PostAssignmentLookup
	Acknowledgements repository.AcknowledgementLookup
	Certifications   repository.CertificationLookup
}

// CheckInAttempt is one check-in event. At and the coordinates come from
// the caller; the pipeline never reads a clock or a device.
type CheckInAttempt struct {
	WorkerID              uuid.UUID
	SiteID                uuid.UUID
	Latitude              float64
	Longitude             float64
	AccuracyMeters        float64
	At                    time.Time
	PreviousGeofenceState geofence.State
	// ApprovedOverrides lists override-eligible reasons already approved for
	// this attempt; matching phases are recorded and skipped.
	ApprovedOverrides []ReasonCode
	// Assignment is the assignment the caller named, if any. When no post
	// assignment is found its post still drives the later phases.
	Assignment    *models.Assignment
	CorrelationID string
}

// CheckInOutcome is the pipeline verdict plus what the phases matched
type CheckInOutcome struct {
	ValidationResult
	ScheduleEntry  *models.ScheduleEntry `json:"-"`
	Shift          *models.Shift         `json:"shift,omitempty"`
	Assignment     *models.Assignment    `json:"assignment,omitempty"`
	GeofenceState  geofence.State        `json:"geofence_state,omitempty"`
	DistanceMeters *float64              `json:"distance_meters,omitempty"`
	Overridden     []ReasonCode          `json:"overridden,omitempty"`
}

// CheckInValidator runs the ordered check-in phases and stops at the first failure
type CheckInValidator struct {
	collab CheckInCollaborators
	policy Policy
}

// NewCheckInValidator creates a new CheckInValidator
func NewCheckInValidator(collab CheckInCollaborators, policy Policy) *CheckInValidator {
	return &CheckInValidator{collab: collab, policy: policy}
}

type checkInRun struct {
	attempt    CheckInAttempt
	date       time.Time
	log        *logger.Logger
	entry      *models.ScheduleEntry
	assignment *models.Assignment
	state      geofence.State
	distance   *float64
	overridden []ReasonCode
}

func (r *checkInRun) post() *models.Post {
	if r.assignment == nil {
		return nil
	}
	return r.assignment.Post
}

func (r *checkInRun) preApproved(reason ReasonCode) bool {
	for _, o := range r.attempt.ApprovedOverrides {
		if o == reason {
			return true
		}
	}
	return false
}

type checkInPhase struct {
	name string
	run  func(ctx context.Context, run *checkInRun) ValidationResult
}

// Validate runs site, shift window, rest period, duplicate, post and
// geofence, acknowledgement and certification checks in that order
func (v *CheckInValidator) Validate(ctx context.Context, attempt CheckInAttempt) *CheckInOutcome {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"worker_id": attempt.WorkerID,
		"site_id":   attempt.SiteID,
	})
	if attempt.CorrelationID != "" {
		log = log.WithField(logger.CorrelationIDKey, attempt.CorrelationID)
	}

	run := &checkInRun{attempt: attempt, log: log}

	if attempt.WorkerID == uuid.Nil || attempt.SiteID == uuid.Nil || attempt.At.IsZero() {
		return &CheckInOutcome{ValidationResult: v.infraFailure(run, "input",
			apperrors.NewValidationError("attempt", "worker, site and time are required"))}
	}
	run.date = models.DateOf(attempt.At)

	phases := []checkInPhase{
		{"site_assignment", v.checkSiteAssignment},
		{"shift_window", v.checkShiftWindow},
		{"rest_period", v.checkRestPeriod},
		{"duplicate_checkin", v.checkDuplicate},
		{"post_geofence", v.checkPostAndGeofence},
		{"post_orders_acknowledgement", v.checkAcknowledgement},
		{"certification", v.checkCertifications},
	}

	for _, phase := range phases {
		result := phase.run(ctx, run)
		if result.Valid {
			continue
		}
		if result.RequiresApproval && run.preApproved(result.Reason) {
			log.WithField("phase", phase.name).Infof("check-in phase failed with %s, proceeding under approved override", result.Reason)
			run.overridden = append(run.overridden, result.Reason)
			continue
		}
		if !result.Reason.IsInfrastructure() {
			log.WithField("phase", phase.name).Infof("check-in rejected: %s", result.Reason)
		}
		return v.outcome(run, result)
	}

	details := map[string]interface{}{}
	if run.entry != nil && run.entry.Shift != nil {
		details["shift_id"] = run.entry.Shift.ID
	}
	if run.assignment != nil {
		details["assignment_id"] = run.assignment.ID
		details["post_id"] = run.assignment.PostID
		if late := lateMinutes(run.assignment, attempt.At); late > 0 {
			details["late_minutes"] = late
		}
	}
	if run.distance != nil {
		details["distance_meters"] = *run.distance
	}
	if len(run.overridden) > 0 {
		details["overridden"] = run.overridden
	}

	log.Info("check-in validated")
	return v.outcome(run, ValidationResult{
		Valid:   true,
		Message: "Check-in accepted. Stay within your post boundary for the whole shift.",
		Details: details,
	})
}

func (v *CheckInValidator) outcome(run *checkInRun, result ValidationResult) *CheckInOutcome {
	out := &CheckInOutcome{
		ValidationResult: result,
		ScheduleEntry:    run.entry,
		Assignment:       run.assignment,
		GeofenceState:    run.state,
		DistanceMeters:   run.distance,
		Overridden:       run.overridden,
	}
	if run.entry != nil {
		out.Shift = run.entry.Shift
	}
	return out
}

// lookup bounds a collaborator read by the policy timeout
func (v *CheckInValidator) lookup(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := v.policy.LookupTimeout
	if timeout <= 0 {
		timeout = DefaultPolicy().LookupTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// infraFailure converts a lookup error into a non-overridable result.
// Validation and not-found errors mean bad input or data; anything else is
// the store.
func (v *CheckInValidator) infraFailure(run *checkInRun, phase string, err error) ValidationResult {
	reason := ReasonDatabaseError
	if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
		reason = ReasonValidationError
	}
	details := map[string]interface{}{"phase": phase}
	if errors.Is(err, context.DeadlineExceeded) {
		details["timeout"] = true
	}

	run.log.WithField("phase", phase).WithError(err).Errorf("check-in lookup failed: %s", reason)
	return ValidationResult{
		Valid:            false,
		Reason:           reason,
		Message:          MessageFor(reason, details),
		Details:          details,
		RequiresApproval: false,
	}
}

func (v *CheckInValidator) checkSiteAssignment(ctx context.Context, run *checkInRun) ValidationResult {
	a := run.attempt

	lctx, cancel := v.lookup(ctx)
	assigned, err := v.collab.Sites.IsWorkerAssignedToSite(lctx, a.WorkerID, a.SiteID)
	cancel()
	if err != nil {
		return v.infraFailure(run, "site_assignment", err)
	}
	if assigned {
		return pass()
	}

	if v.collab.SitesFallback != nil {
		lctx, cancel := v.lookup(ctx)
		assigned, err = v.collab.SitesFallback.IsWorkerAssignedToSite(lctx, a.WorkerID, a.SiteID)
		cancel()
		if err != nil {
			return v.infraFailure(run, "site_assignment_fallback", err)
		}
		if assigned {
			run.log.Debugf("site membership confirmed by fallback source")
			return pass()
		}
	}

	return fail(ReasonNotAssignedToSite, v.policy, map[string]interface{}{
		"site_id": a.SiteID,
	})
}

func (v *CheckInValidator) checkShiftWindow(ctx context.Context, run *checkInRun) ValidationResult {
	a := run.attempt

	lctx, cancel := v.lookup(ctx)
	entry, found, err := v.collab.Schedule.FindActiveShiftAssignment(lctx, a.WorkerID, a.SiteID, run.date)
	cancel()
	if err != nil {
		return v.infraFailure(run, "shift_window", err)
	}
	if !found || entry == nil {
		return fail(ReasonNoShiftAssigned, v.policy, map[string]interface{}{
			"date": run.date.Format("2006-01-02"),
		})
	}
	run.entry = entry

	if entry.ShiftID == nil || entry.Shift == nil {
		return fail(ReasonNoShiftSpecified, v.policy, map[string]interface{}{
			"schedule_entry_id": entry.ID,
		})
	}

	start, end := ShiftWindow(entry.Shift, a.At, v.policy.GracePeriod)
	if a.At.Before(start) || a.At.After(end) {
		outside := start.Sub(a.At)
		if a.At.After(end) {
			outside = a.At.Sub(end)
		}
		return fail(ReasonOutsideShiftWindow, v.policy, map[string]interface{}{
			"shift_id":               entry.Shift.ID,
			"shift_name":             entry.Shift.Name,
			"window_start":           start.Format("15:04"),
			"window_end":             end.Format("15:04"),
			"minutes_outside_window": round1(outside.Minutes()),
		})
	}
	return pass()
}

func (v *CheckInValidator) checkRestPeriod(ctx context.Context, run *checkInRun) ValidationResult {
	a := run.attempt

	lctx, cancel := v.lookup(ctx)
	lastCheckout, found, err := v.collab.Attendance.FindLastCheckout(lctx, a.WorkerID)
	cancel()
	if err != nil {
		return v.infraFailure(run, "rest_period", err)
	}
	if !found {
		return pass()
	}

	rest := a.At.Sub(lastCheckout)
	if rest >= v.policy.MinimumRest {
		return pass()
	}
	return fail(ReasonInsufficientRestPeriod, v.policy, map[string]interface{}{
		"actual_rest_hours":  round2(rest.Hours()),
		"minimum_rest_hours": v.policy.MinimumRest.Hours(),
		"last_checkout_at":   lastCheckout,
	})
}

func (v *CheckInValidator) checkDuplicate(ctx context.Context, run *checkInRun) ValidationResult {
	lctx, cancel := v.lookup(ctx)
	open, err := v.collab.Attendance.HasOpenCheckIn(lctx, run.attempt.WorkerID, run.date)
	cancel()
	if err != nil {
		return v.infraFailure(run, "duplicate_checkin", err)
	}
	if open {
		return fail(ReasonDuplicateCheckIn, v.policy, nil)
	}
	return pass()
}

func (v *CheckInValidator) checkPostAndGeofence(ctx context.Context, run *checkInRun) ValidationResult {
	a := run.attempt

	lctx, cancel := v.lookup(ctx)
	assignment, found, err := v.collab.PostAssignments.FindPostAssignment(lctx, a.WorkerID, run.date, a.At)
	cancel()
	if err != nil {
		return v.infraFailure(run, "post_assignment", err)
	}
	if !found || assignment == nil {
		if named := a.Assignment; named != nil && named.Post != nil {
			run.assignment = named
		}
		return fail(ReasonNoPostAssigned, v.policy, map[string]interface{}{
			"date": run.date.Format("2006-01-02"),
		})
	}
	if assignment.Post == nil {
		return v.infraFailure(run, "post_assignment", apperrors.NewValidationError("post", "assignment has no post loaded"))
	}
	run.assignment = assignment
	post := assignment.Post

	boundary := BoundaryOf(post)
	hysteresis := v.policy.DefaultHysteresisMeters
	if post.HysteresisMeters != nil {
		hysteresis = *post.HysteresisMeters
	}

	point := geofence.Point{Lat: a.Latitude, Lon: a.Longitude}
	inside, err := geofence.IsInside(point, boundary, a.PreviousGeofenceState, hysteresis)
	if err != nil {
		return v.infraFailure(run, "geofence", err)
	}
	distance, err := geofence.Distance(point, boundary)
	if err != nil {
		return v.infraFailure(run, "geofence", err)
	}
	distance = round1(distance)
	run.state = geofence.StateOf(inside)
	run.distance = &distance

	if inside {
		return pass()
	}
	return fail(ReasonWrongPostLocation, v.policy, map[string]interface{}{
		"post_id":           post.ID,
		"post_name":         post.Name,
		"distance_meters":   distance,
		"radius_meters":     post.RadiusMeters,
		"hysteresis_meters": hysteresis,
		"accuracy_meters":   a.AccuracyMeters,
	})
}

func (v *CheckInValidator) checkAcknowledgement(ctx context.Context, run *checkInRun) ValidationResult {
	post := run.post()
	if post == nil || !post.RequiresAcknowledgement() {
		return pass()
	}

	lctx, cancel := v.lookup(ctx)
	ok, err := v.collab.Acknowledgements.HasValidAcknowledgement(lctx, run.attempt.WorkerID, post.ID, run.date)
	cancel()
	if err != nil {
		return v.infraFailure(run, "post_orders_acknowledgement", err)
	}
	if ok {
		return pass()
	}
	return fail(ReasonPostOrdersNotAcknowledged, v.policy, map[string]interface{}{
		"post_id":             post.ID,
		"post_name":           post.Name,
		"post_orders_version": post.PostOrdersVersion,
		"risk_level":          post.RiskLevel,
	})
}

func (v *CheckInValidator) checkCertifications(ctx context.Context, run *checkInRun) ValidationResult {
	post := run.post()
	if post == nil || !post.HasRequirements() {
		return pass()
	}

	lctx, cancel := v.lookup(ctx)
	missing, err := v.collab.Certifications.WorkerMissingCertifications(lctx, run.attempt.WorkerID, post)
	cancel()
	if err != nil {
		return v.infraFailure(run, "certification", err)
	}
	if len(missing) == 0 {
		return pass()
	}
	return fail(ReasonMissingCertification, v.policy, map[string]interface{}{
		"post_id": post.ID,
		"missing": missing,
	})
}

// ShiftWindow returns the check-in window of the shift occurrence relevant
// to at, widened by grace on both sides. For overnight shifts a check-in at
// or after the (graced) start belongs to tonight's shift and the end moves
// to tomorrow; one before the (graced) end belongs to last night's shift
// and the start moves to yesterday.
func ShiftWindow(shift *models.Shift, at time.Time, grace time.Duration) (time.Time, time.Time) {
	day := models.DateOf(at)
	start := shift.StartTime.On(day).Add(-grace)
	end := shift.EndTime.On(day).Add(grace)

	if shift.IsOvernight() {
		switch {
		case !at.Before(start):
			end = end.AddDate(0, 0, 1)
		case at.Before(end):
			start = start.AddDate(0, 0, -1)
		default:
			end = end.AddDate(0, 0, 1)
		}
	}
	return start, end
}

// BoundaryOf converts a post's geofence columns into a geofence.Boundary
func BoundaryOf(post *models.Post) geofence.Boundary {
	if post.GeofenceType == models.GeofenceTypePolygon {
		vertices := make([]geofence.Point, 0, len(post.Polygon))
		for _, v := range post.Polygon {
			vertices = append(vertices, geofence.Point{Lat: v.Lat, Lon: v.Lon})
		}
		return geofence.Polygon(vertices...)
	}
	return geofence.Circle(geofence.Point{Lat: post.CenterLat, Lon: post.CenterLon}, post.RadiusMeters)
}

// lateMinutes is whole minutes after the scheduled start, never negative
func lateMinutes(a *models.Assignment, at time.Time) int {
	if a.StartsAt.IsZero() || !at.After(a.StartsAt) {
		return 0
	}
	return int(at.Sub(a.StartsAt) / time.Minute)
}
