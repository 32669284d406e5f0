package service

import (
	"fmt"
	"strings"
)

// ReasonCode is the machine-readable outcome of a failed check-in phase
type ReasonCode string

const (
	ReasonNotAssignedToSite         ReasonCode = "NOT_ASSIGNED_TO_SITE"
	ReasonNoShiftAssigned           ReasonCode = "NO_SHIFT_ASSIGNED"
	ReasonNoShiftSpecified          ReasonCode = "NO_SHIFT_SPECIFIED"
	ReasonOutsideShiftWindow        ReasonCode = "OUTSIDE_SHIFT_WINDOW"
	ReasonInsufficientRestPeriod    ReasonCode = "INSUFFICIENT_REST_PERIOD"
	ReasonDuplicateCheckIn          ReasonCode = "DUPLICATE_CHECKIN"
	ReasonNoPostAssigned            ReasonCode = "NO_POST_ASSIGNED"
	ReasonWrongPostLocation         ReasonCode = "WRONG_POST_LOCATION"
	ReasonPostOrdersNotAcknowledged ReasonCode = "POST_ORDERS_NOT_ACKNOWLEDGED"
	ReasonMissingCertification      ReasonCode = "MISSING_CERTIFICATION"
	ReasonDatabaseError             ReasonCode = "DATABASE_ERROR"
	ReasonValidationError           ReasonCode = "VALIDATION_ERROR"
)

// IsHardBlock reports reasons that no approval can override
func (r ReasonCode) IsHardBlock() bool {
	return r == ReasonDuplicateCheckIn || r == ReasonPostOrdersNotAcknowledged
}

// IsInfrastructure reports reasons caused by lookups failing rather than policy
func (r ReasonCode) IsInfrastructure() bool {
	return r == ReasonDatabaseError || r == ReasonValidationError
}

// IsOverridable reports whether an approval may bypass the reason under policy
func (r ReasonCode) IsOverridable(policy Policy) bool {
	switch r {
	case ReasonNotAssignedToSite, ReasonNoShiftAssigned, ReasonNoShiftSpecified,
		ReasonOutsideShiftWindow, ReasonInsufficientRestPeriod, ReasonNoPostAssigned,
		ReasonWrongPostLocation:
		return true
	case ReasonMissingCertification:
		return !policy.CertificationHardBlock
	}
	return false
}

// ValidationResult is returned by every check-in phase
type ValidationResult struct {
	Valid            bool                   `json:"valid"`
	Reason           ReasonCode             `json:"reason,omitempty"`
	Message          string                 `json:"message"`
	Details          map[string]interface{} `json:"details,omitempty"`
	RequiresApproval bool                   `json:"requires_approval"`
}

func pass() ValidationResult {
	return ValidationResult{Valid: true}
}

func fail(reason ReasonCode, policy Policy, details map[string]interface{}) ValidationResult {
	if details == nil {
		details = map[string]interface{}{}
	}
	return ValidationResult{
		Valid:            false,
		Reason:           reason,
		Message:          MessageFor(reason, details),
		Details:          details,
		RequiresApproval: reason.IsOverridable(policy),
	}
}

// MessageFor renders the worker-facing message for a reason, naming what
// the worker should do next
func MessageFor(reason ReasonCode, details map[string]interface{}) string {
	switch reason {
	case ReasonNotAssignedToSite:
		return "You are not on the roster for this site. Ask your supervisor to add you to the site or request an override."
	case ReasonNoShiftAssigned:
		return "You have no shift scheduled at this site today. Contact your supervisor to be rostered before checking in."
	case ReasonNoShiftSpecified:
		return "Your roster entry for today has no shift set. Ask your supervisor to assign the shift, then check in again."
	case ReasonOutsideShiftWindow:
		if start, ok := details["window_start"].(string); ok {
			return fmt.Sprintf("Check-in for your shift is open from %s to %s. Check in within that window or request an override.",
				start, details["window_end"])
		}
		return "It is outside your shift's check-in window. Check in within the window or request an override."
	case ReasonInsufficientRestPeriod:
		actual, _ := details["actual_rest_hours"].(float64)
		minimum, _ := details["minimum_rest_hours"].(float64)
		return fmt.Sprintf("You have rested %.1f hours but %.0f hours are required between shifts. Rest until the minimum is met or request an override.",
			actual, minimum)
	case ReasonDuplicateCheckIn:
		return "You are already checked in. Check out of your current shift before checking in again."
	case ReasonNoPostAssigned:
		return "You have no post assignment for this time. Contact your supervisor to be assigned a post."
	case ReasonWrongPostLocation:
		distance, _ := details["distance_meters"].(float64)
		radius, _ := details["radius_meters"].(float64)
		if name, ok := details["post_name"].(string); ok && name != "" {
			return fmt.Sprintf("You are %.0f m from %s (allowed %.0f m). Move to your assigned post and try again.", distance, name, radius)
		}
		return fmt.Sprintf("You are %.0f m from your post (allowed %.0f m). Move to your assigned post and try again.", distance, radius)
	case ReasonPostOrdersNotAcknowledged:
		if version, ok := details["post_orders_version"].(int); ok {
			return fmt.Sprintf("Acknowledge the current post orders (version %d) before checking in.", version)
		}
		return "Acknowledge the current post orders before checking in."
	case ReasonMissingCertification:
		if missing, ok := details["missing"].([]string); ok && len(missing) > 0 {
			return fmt.Sprintf("This post requires %s. Contact your supervisor before taking this post.", strings.Join(missing, ", "))
		}
		return "You lack a certification this post requires. Contact your supervisor before taking this post."
	case ReasonDatabaseError:
		return "Check-in could not be verified right now. Try again shortly and contact your supervisor if it keeps failing."
	case ReasonValidationError:
		return "Your check-in data could not be read. Make sure location services are on and try again."
	}
	return "Check-in was rejected. Contact your supervisor."
}
