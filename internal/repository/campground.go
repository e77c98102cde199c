package repository

import (
	"context"
	"errors"
	"time"

	"yelpcamp/internal/database/models"
	apperrors "yelpcamp/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CampgroundRepository handles database operations for campgrounds
type CampgroundRepository struct {
	db *gorm.DB
}

// Ensure CampgroundRepository implements CampgroundRepositoryInterface
var _ CampgroundRepositoryInterface = (*CampgroundRepository)(nil)

// NewCampgroundRepository creates a new campground repository
func NewCampgroundRepository(db *gorm.DB) *CampgroundRepository {
	return &CampgroundRepository{db: db}
}

// Create inserts a campground with a fresh id and no reviews
func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	campground.ID = ""
	campground.ReviewIDs = []string{}
	campground.Reviews = nil
	if err := r.db.WithContext(ctx).Create(campground).Error; err != nil {
		return apperrors.NewStoreError("create campground", err)
	}
	return nil
}

// GetByID retrieves a campground by its id
func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (*models.Campground, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrCampgroundNotFound
	}
	var campground models.Campground
	if err := r.db.WithContext(ctx).First(&campground, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampgroundNotFound
		}
		return nil, apperrors.NewStoreError("get campground", err)
	}
	if campground.ReviewIDs == nil {
		campground.ReviewIDs = []string{}
	}
	return &campground, nil
}

// GetWithReviews retrieves a campground with its reviews resolved in reference order
func (r *CampgroundRepository) GetWithReviews(ctx context.Context, id string) (*models.Campground, error) {
	campground, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	campground.Reviews = []models.Review{}
	ids := filterUUIDs(campground.ReviewIDs)
	if len(ids) == 0 {
		return campground, nil
	}

	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&reviews).Error; err != nil {
		return nil, apperrors.NewStoreError("get campground reviews", err)
	}
	campground.Reviews = models.OrderByIDs(reviews, campground.ReviewIDs)
	return campground, nil
}

// GetAll retrieves all campgrounds in insertion order
func (r *CampgroundRepository) GetAll(ctx context.Context) ([]models.Campground, error) {
	var campgrounds []models.Campground
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&campgrounds).Error; err != nil {
		return nil, apperrors.NewStoreError("list campgrounds", err)
	}
	return campgrounds, nil
}

// Update replaces the editable fields of the campground; id and review references are untouched
func (r *CampgroundRepository) Update(ctx context.Context, campground *models.Campground) error {
	if !isUUID(campground.ID) {
		return apperrors.ErrCampgroundNotFound
	}
	result := r.db.WithContext(ctx).Model(&models.Campground{}).
		Where("id = ?", campground.ID).
		Updates(map[string]interface{}{
			"title":       campground.Title,
			"image":       campground.Image,
			"price":       campground.Price,
			"description": campground.Description,
			"location":    campground.Location,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return apperrors.NewStoreError("update campground", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// AppendReview appends reviewID to the campground's review references in a single statement
func (r *CampgroundRepository) AppendReview(ctx context.Context, campgroundID, reviewID string) error {
	if !isUUID(campgroundID) {
		return apperrors.ErrCampgroundNotFound
	}
	result := r.db.WithContext(ctx).Model(&models.Campground{}).
		Where("id = ?", campgroundID).
		Updates(map[string]interface{}{
			"review_ids": gorm.Expr("review_ids || jsonb_build_array(?::text)", reviewID),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return apperrors.NewStoreError("attach review", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCampgroundNotFound
	}
	return nil
}

// Delete removes the campground and returns the removed row
func (r *CampgroundRepository) Delete(ctx context.Context, id string) (*models.Campground, error) {
	if !isUUID(id) {
		return nil, apperrors.ErrCampgroundNotFound
	}
	var removed []models.Campground
	result := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&removed)
	if result.Error != nil {
		return nil, apperrors.NewStoreError("delete campground", result.Error)
	}
	if result.RowsAffected == 0 || len(removed) == 0 {
		return nil, apperrors.ErrCampgroundNotFound
	}
	campground := removed[0]
	if campground.ReviewIDs == nil {
		campground.ReviewIDs = []string{}
	}
	return &campground, nil
}

// DeleteAll removes every campground
func (r *CampgroundRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Campground{})
	if result.Error != nil {
		return 0, apperrors.NewStoreError("delete all campgrounds", result.Error)
	}
	return result.RowsAffected, nil
}
