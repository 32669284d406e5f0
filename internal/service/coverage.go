package service

import (
	"context"
	"fmt"
	"time"

	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/repository"
)

// Coverage is a post's staffing on a date
type Coverage struct {
	PostID   string `json:"post_id"`
	Date     string `json:"date"`
	IsMet    bool   `json:"is_met"`
	Assigned int    `json:"assigned"`
	Required int    `json:"required"`
	Gap      int    `json:"gap"`
}

// CoverageCalculator counts non-terminal assignments against a post's requirement
type CoverageCalculator struct {
	assignments repository.AssignmentRepositoryInterface
}

// NewCoverageCalculator creates a new coverage calculator
func NewCoverageCalculator(assignments repository.AssignmentRepositoryInterface) *CoverageCalculator {
	return &CoverageCalculator{assignments: assignments}
}

// Coverage reports whether the post is staffed on date. Posts that do not
// require coverage are always met with nothing required.
func (c *CoverageCalculator) Coverage(ctx context.Context, post *models.Post, date time.Time) (*Coverage, error) {
	day := models.DateOf(date)
	cov := &Coverage{PostID: post.ID.String(), Date: day.Format("2006-01-02")}
	if !post.CoverageRequired {
		cov.IsMet = true
		return cov, nil
	}

	assigned, err := c.assignments.CountActiveForPost(ctx, post.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments for post: %w", err)
	}
	cov.Assigned = int(assigned)
	cov.Required = post.RequiredGuards
	cov.IsMet = cov.Assigned >= cov.Required
	if !cov.IsMet {
		cov.Gap = cov.Required - cov.Assigned
	}
	return cov, nil
}
