package repository

import (
	"context"
	"errors"
	"time"

	apperrors "guard-deployment-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// day renders the calendar date of t in its own location, for comparisons
// against date columns
func day(t time.Time) string {
	return t.Format(dateLayout)
}

// translate maps gorm sentinel errors onto domain errors
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	}
	return err
}

// saveVersioned writes every column of value if the stored version still
// equals *version, then advances it. A lost race returns ErrOptimisticLock.
func saveVersioned(ctx context.Context, db *gorm.DB, value interface{}, version *int) error {
	previous := *version
	*version = previous + 1
	res := db.WithContext(ctx).
		Model(value).
		Where("version = ?", previous).
		Select("*").
		Omit("id", "created_at", "created_by", clause.Associations).
		Updates(value)
	if res.Error != nil {
		*version = previous
		return res.Error
	}
	if res.RowsAffected == 0 {
		*version = previous
		return apperrors.ErrOptimisticLock
	}
	return nil
}
