package service

import (
	"sort"

	"guard-deployment-backend/internal/database/models"
)

// Detail keys read by auto-approval conditions
const (
	detailDistanceMeters       = "distance_meters"
	detailMinutesOutsideWindow = "minutes_outside_window"
	detailActualRestHours      = "actual_rest_hours"
	detailPostRiskLevel        = "post_risk_level"
)

// RuleMatches reports whether every condition set on the rule holds for the
// request. A threshold condition fails closed when the request lacks the
// detail it measures.
func RuleMatches(rule *models.AutoApprovalRule, req *models.ApprovalRequest) bool {
	if !rule.IsActive || !rule.RequestTypes.Contains(string(req.Type)) {
		return false
	}
	if len(rule.ReasonCodes) > 0 && !rule.ReasonCodes.Contains(req.ReasonCode) {
		return false
	}
	if len(rule.Priorities) > 0 && !rule.Priorities.Contains(string(req.Priority)) {
		return false
	}
	if len(rule.PostRiskLevels) > 0 {
		if !rule.PostRiskLevels.Contains(req.Details.String(detailPostRiskLevel)) {
			return false
		}
	}
	if rule.MaxDistanceMeters != nil {
		d, ok := req.Details.Float(detailDistanceMeters)
		if !ok || d > *rule.MaxDistanceMeters {
			return false
		}
	}
	if rule.MaxMinutesOutsideWindow != nil {
		m, ok := req.Details.Float(detailMinutesOutsideWindow)
		if !ok || m > *rule.MaxMinutesOutsideWindow {
			return false
		}
	}
	if rule.MinRestHours != nil {
		h, ok := req.Details.Float(detailActualRestHours)
		if !ok || h < *rule.MinRestHours {
			return false
		}
	}
	return true
}

// FirstMatchingRule evaluates rules in Sequence order and returns the first
// match, or nil
func FirstMatchingRule(rules []models.AutoApprovalRule, req *models.ApprovalRequest) *models.AutoApprovalRule {
	ordered := make([]models.AutoApprovalRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Sequence < ordered[j].Sequence
	})
	for i := range ordered {
		if RuleMatches(&ordered[i], req) {
			return &ordered[i]
		}
	}
	return nil
}
