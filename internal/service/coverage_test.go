package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/mocks"
	"guard-deployment-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCoverage(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("not required is always met", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAssignmentRepositoryInterface(ctrl)
		repo.EXPECT().CountActiveForPost(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		post := &models.Post{BaseModel: models.BaseModel{ID: uuid.New()}, RequiredGuards: 2}
		cov, err := service.NewCoverageCalculator(repo).Coverage(context.Background(), post, day.Add(13*time.Hour))

		require.NoError(t, err)
		assert.True(t, cov.IsMet)
		assert.Zero(t, cov.Required)
		assert.Zero(t, cov.Gap)
		assert.Equal(t, "2026-03-14", cov.Date)
	})

	t.Run("gap is required minus assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAssignmentRepositoryInterface(ctrl)
		post := &models.Post{BaseModel: models.BaseModel{ID: uuid.New()}, CoverageRequired: true, RequiredGuards: 3}
		repo.EXPECT().CountActiveForPost(gomock.Any(), post.ID, day).Return(int64(1), nil)

		cov, err := service.NewCoverageCalculator(repo).Coverage(context.Background(), post, day.Add(13*time.Hour))

		require.NoError(t, err)
		assert.False(t, cov.IsMet)
		assert.Equal(t, 2, cov.Gap)
	})

	t.Run("over staffed has no gap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAssignmentRepositoryInterface(ctrl)
		post := &models.Post{BaseModel: models.BaseModel{ID: uuid.New()}, CoverageRequired: true, RequiredGuards: 1}
		repo.EXPECT().CountActiveForPost(gomock.Any(), post.ID, day).Return(int64(2), nil)

		cov, err := service.NewCoverageCalculator(repo).Coverage(context.Background(), post, day)

		require.NoError(t, err)
		assert.True(t, cov.IsMet)
		assert.Zero(t, cov.Gap)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAssignmentRepositoryInterface(ctrl)
		post := &models.Post{BaseModel: models.BaseModel{ID: uuid.New()}, CoverageRequired: true, RequiredGuards: 1}
		repo.EXPECT().CountActiveForPost(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		_, err := service.NewCoverageCalculator(repo).Coverage(context.Background(), post, day)

		assert.ErrorContains(t, err, "connection refused")
	})
}
