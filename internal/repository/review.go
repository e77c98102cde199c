package repository

import (
	"context"
	"errors"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *gorm.DB
}

// Ensure ReviewRepository implements ReviewRepositoryInterface
var _ ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review with a fresh id
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = ""
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return apperrors.NewStoreError("create review", err)
	}
	return nil
}

// GetByID retrieves a review by its id
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrReviewNotFound
	}
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, apperrors.NewStoreError("get review", err)
	}
	return &review, nil
}

// GetByIDs retrieves the reviews that exist among ids
func (r *ReviewRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Review, error) {
	valid := filterUUIDs(ids)
	if len(valid) == 0 {
		return []models.Review{}, nil
	}
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("id IN ?", valid).Find(&reviews).Error; err != nil {
		return nil, apperrors.NewStoreError("get reviews", err)
	}
	return reviews, nil
}

// DeleteMany deletes the reviews among ids and returns how many were removed.
// Ids that do not exist are ignored.
func (r *ReviewRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	valid := filterUUIDs(ids)
	if len(valid) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", valid).Delete(&models.Review{})
	if result.Error != nil {
		return 0, apperrors.NewStoreError("delete reviews", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteAll removes every review
func (r *ReviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Review{})
	if result.Error != nil {
		return 0, apperrors.NewStoreError("delete all reviews", result.Error)
	}
	return result.RowsAffected, nil
}
