package models

// AssignmentStatus is the lifecycle state of an assignment
type AssignmentStatus string

const (
	AssignmentStatusScheduled  AssignmentStatus = "SCHEDULED"
	AssignmentStatusConfirmed  AssignmentStatus = "CONFIRMED"
	AssignmentStatusInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentStatusCompleted  AssignmentStatus = "COMPLETED"
	AssignmentStatusNoShow     AssignmentStatus = "NO_SHOW"
	AssignmentStatusCancelled  AssignmentStatus = "CANCELLED"
)

// ActiveAssignmentStatuses count towards coverage and double-booking
var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentStatusScheduled,
	AssignmentStatusConfirmed,
	AssignmentStatusInProgress,
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusScheduled, AssignmentStatusConfirmed, AssignmentStatusInProgress,
		AssignmentStatusCompleted, AssignmentStatusNoShow, AssignmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s AssignmentStatus) IsTerminal() bool {
	switch s {
	case AssignmentStatusCompleted, AssignmentStatusNoShow, AssignmentStatusCancelled:
		return true
	}
	return false
}

// RiskLevel classifies a post
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// IsValid checks if the RiskLevel is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return true
	}
	return false
}

// RequiresAcknowledgement reports whether guards must acknowledge the
// current post orders before checking in
func (r RiskLevel) RequiresAcknowledgement() bool {
	return r == RiskLevelHigh || r == RiskLevelCritical
}

// GeofenceType defines the shape of a post boundary
type GeofenceType string

const (
	GeofenceTypeCircle  GeofenceType = "CIRCLE"
	GeofenceTypePolygon GeofenceType = "POLYGON"
)

// IsValid checks if the GeofenceType is valid
func (g GeofenceType) IsValid() bool {
	return g == GeofenceTypeCircle || g == GeofenceTypePolygon
}

// ApprovalRequestType is what an approval request asks for
type ApprovalRequestType string

const (
	ApprovalTypeValidationOverride  ApprovalRequestType = "VALIDATION_OVERRIDE"
	ApprovalTypeEmergencyAssignment ApprovalRequestType = "EMERGENCY_ASSIGNMENT"
	ApprovalTypeShiftChange         ApprovalRequestType = "SHIFT_CHANGE"
)

// IsValid checks if the ApprovalRequestType is valid
func (t ApprovalRequestType) IsValid() bool {
	switch t {
	case ApprovalTypeValidationOverride, ApprovalTypeEmergencyAssignment, ApprovalTypeShiftChange:
		return true
	}
	return false
}

// ApprovalPriority orders reviewer attention and sets expiry
type ApprovalPriority string

const (
	ApprovalPriorityUrgent ApprovalPriority = "URGENT"
	ApprovalPriorityHigh   ApprovalPriority = "HIGH"
	ApprovalPriorityNormal ApprovalPriority = "NORMAL"
	ApprovalPriorityLow    ApprovalPriority = "LOW"
)

// IsValid checks if the ApprovalPriority is valid
func (p ApprovalPriority) IsValid() bool {
	switch p {
	case ApprovalPriorityUrgent, ApprovalPriorityHigh, ApprovalPriorityNormal, ApprovalPriorityLow:
		return true
	}
	return false
}

// Escalates reports whether unresolved requests of this priority are escalated
func (p ApprovalPriority) Escalates() bool {
	return p == ApprovalPriorityUrgent || p == ApprovalPriorityHigh
}

// ApprovalStatus is the lifecycle state of an approval request
type ApprovalStatus string

const (
	ApprovalStatusPending          ApprovalStatus = "PENDING"
	ApprovalStatusAutoApproved     ApprovalStatus = "AUTO_APPROVED"
	ApprovalStatusManuallyApproved ApprovalStatus = "MANUALLY_APPROVED"
	ApprovalStatusRejected         ApprovalStatus = "REJECTED"
	ApprovalStatusExpired          ApprovalStatus = "EXPIRED"
	ApprovalStatusCancelled        ApprovalStatus = "CANCELLED"
)

// IsValid checks if the ApprovalStatus is valid
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusAutoApproved, ApprovalStatusManuallyApproved,
		ApprovalStatusRejected, ApprovalStatusExpired, ApprovalStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the request has been resolved
func (s ApprovalStatus) IsTerminal() bool {
	return s != ApprovalStatusPending
}

// IsApproved reports either approval outcome
func (s ApprovalStatus) IsApproved() bool {
	return s == ApprovalStatusAutoApproved || s == ApprovalStatusManuallyApproved
}
