package service

import (
	"context"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
)

// RelationshipManager keeps campgrounds and the reviews they own consistent.
// Each composite operation runs inside one store transaction.
type RelationshipManager struct {
	store repository.Store
}

// NewRelationshipManager creates a relationship manager on store
func NewRelationshipManager(store repository.Store) *RelationshipManager {
	return &RelationshipManager{store: store}
}

// Attach creates review and appends its id to the campground's references.
// The campground is checked first so a missing parent never leaves a stray review.
func (m *RelationshipManager) Attach(ctx context.Context, campgroundID string, review *models.Review) error {
	err := m.store.WithinTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Campgrounds().GetByID(ctx, campgroundID); err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, review); err != nil {
			return err
		}
		if err := tx.Campgrounds().AppendReview(ctx, campgroundID, review.ID); err != nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"campground_id": campgroundID,
				"review_id":     review.ID,
			}).WithError(err).Warn("Failed to attach review to campground")
			return err
		}
		return nil
	})
	return apperrors.NewStoreError("create review", err)
}

// DeleteCampground removes the campground and every review it references.
// It returns the removed campground and the number of reviews deleted with it.
func (m *RelationshipManager) DeleteCampground(ctx context.Context, id string) (*models.Campground, int64, error) {
	var (
		removed *models.Campground
		deleted int64
	)
	err := m.store.WithinTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		campground, err := tx.Campgrounds().Delete(ctx, id)
		if err != nil {
			return err
		}
		n, err := cascadeDelete(ctx, tx, campground.ReviewIDs)
		if err != nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"campground_id": id,
				"review_ids":    campground.ReviewIDs,
			}).WithError(err).Warn("Cascade delete failed, reviews may be orphaned")
			return err
		}
		removed, deleted = campground, n
		return nil
	})
	if err != nil {
		return nil, 0, apperrors.NewStoreError("delete campground", err)
	}
	return removed, deleted, nil
}

// CascadeDelete deletes every review in reviewIDs. Unknown ids are ignored.
func (m *RelationshipManager) CascadeDelete(ctx context.Context, reviewIDs []string) (int64, error) {
	return cascadeDelete(ctx, m.store, reviewIDs)
}

func cascadeDelete(ctx context.Context, store repository.Store, reviewIDs []string) (int64, error) {
	if len(reviewIDs) == 0 {
		return 0, nil
	}
	n, err := store.Reviews().DeleteMany(ctx, reviewIDs)
	if err != nil {
		return 0, apperrors.NewStoreError("delete reviews", err)
	}
	return n, nil
}
