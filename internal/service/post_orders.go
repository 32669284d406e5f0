package service

import (
	"context"
	"fmt"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/lock"
	"guard-deployment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReviseOrdersRequest represents new post orders content
type ReviseOrdersRequest struct {
	Content string `json:"content" validate:"required,max=20000"`
}

// AcknowledgeRequest represents a worker accepting the current post orders
type AcknowledgeRequest struct {
	WorkerID uuid.UUID `json:"worker_id" validate:"required"`
	// Version the worker read; rejected when the orders changed since
	Version *int `json:"version,omitempty"`
}

// AcknowledgementVerification reports whether an acknowledgement still holds
type AcknowledgementVerification struct {
	AcknowledgementID   uuid.UUID `json:"acknowledgement_id"`
	PostID              uuid.UUID `json:"post_id"`
	AcknowledgedVersion int       `json:"acknowledged_version"`
	CurrentVersion      int       `json:"current_version"`
	Current             bool      `json:"current"`
	IntegrityChecked    bool      `json:"integrity_checked"`
	IntegrityVerified   bool      `json:"integrity_verified"`
}

// PostOrdersService manages post orders and their acknowledgements
type PostOrdersService struct {
	posts     repository.PostRepositoryInterface
	acks      repository.AcknowledgementRepositoryInterface
	sites     repository.SiteRepositoryInterface
	locker    lock.Locker
	effects   EffectPublisher
	validator *validator.Validate
}

// NewPostOrdersService creates a new post orders service
func NewPostOrdersService(posts repository.PostRepositoryInterface, acks repository.AcknowledgementRepositoryInterface, sites repository.SiteRepositoryInterface, locker lock.Locker, effects EffectPublisher, validator *validator.Validate) *PostOrdersService {
	return &PostOrdersService{posts: posts, acks: acks, sites: sites, locker: locker, effects: effects, validator: validator}
}

// ReviseOrders replaces a post's orders. Unchanged content keeps the version.
func (s *PostOrdersService) ReviseOrders(ctx context.Context, postID uuid.UUID, req *ReviseOrdersRequest, actor Actor) (*models.Post, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("content", err.Error())
	}

	var post *models.Post
	err := withLock(ctx, s.locker, lock.Key("post", postID), func() error {
		p, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}
		post = p
		previous := p.PostOrdersVersion
		if !p.ReviseOrders(req.Content) {
			return nil
		}
		p.UpdatedBy = actor.Username
		if err := s.posts.UpdateOrders(ctx, p, previous); err != nil {
			return fmt.Errorf("failed to update post orders: %w", err)
		}
		publish(ctx, s.effects, Effects{{Kind: EffectAuditTrail, Subject: p.ID, Attributes: map[string]interface{}{
			"action":       "revise_orders",
			"from_version": previous,
			"to_version":   p.PostOrdersVersion,
		}}})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Acknowledge records that the worker accepted the post's current orders at at
func (s *PostOrdersService) Acknowledge(ctx context.Context, postID uuid.UUID, req *AcknowledgeRequest, at time.Time) (*models.PostOrdersAcknowledgement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("acknowledgement", err.Error())
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if req.Version != nil && *req.Version != post.PostOrdersVersion {
		return nil, apperrors.NewValidationError("version", fmt.Sprintf("post orders are now at version %d, read them again", post.PostOrdersVersion))
	}
	loc, err := siteLocation(ctx, s.sites, post.SiteID)
	if err != nil {
		return nil, err
	}

	local := at.In(loc)
	ack := &models.PostOrdersAcknowledgement{
		WorkerID:          req.WorkerID,
		PostID:            post.ID,
		PostOrdersVersion: post.PostOrdersVersion,
		AcknowledgedOn:    models.DateOf(local),
		AcknowledgedAt:    at,
		ContentHash:       models.HashPostOrders(post.PostOrders),
	}
	if err := s.acks.Create(ctx, ack); err != nil {
		return nil, fmt.Errorf("failed to record acknowledgement: %w", err)
	}
	return ack, nil
}

// VerifyAcknowledgement checks whether an acknowledgement is for the current
// orders and, if so, whether the recorded hash matches them
func (s *PostOrdersService) VerifyAcknowledgement(ctx context.Context, id uuid.UUID) (*AcknowledgementVerification, error) {
	ack, err := s.acks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledgement: %w", err)
	}
	post, err := s.posts.GetByID(ctx, ack.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	v := &AcknowledgementVerification{
		AcknowledgementID:   ack.ID,
		PostID:              post.ID,
		AcknowledgedVersion: ack.PostOrdersVersion,
		CurrentVersion:      post.PostOrdersVersion,
		Current:             ack.PostOrdersVersion == post.PostOrdersVersion,
	}
	if v.Current {
		v.IntegrityChecked = true
		v.IntegrityVerified = ack.VerifyIntegrity(post.PostOrders)
	}
	return v, nil
}
