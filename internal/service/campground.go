package service

import (
	"context"
	"time"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/validation"
)

// CampgroundService handles business logic for campgrounds
type CampgroundService struct {
	store     repository.Store
	relations *RelationshipManager
	validator *validation.Validator
}

// NewCampgroundService creates a new campground service
func NewCampgroundService(store repository.Store, relations *RelationshipManager, validator *validation.Validator) *CampgroundService {
	return &CampgroundService{
		store:     store,
		relations: relations,
		validator: validator,
	}
}

// CampgroundResponse represents a single campground. Reviews is resolved only
// on detail reads.
type CampgroundResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Image       string           `json:"image"`
	Price       float64          `json:"price"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	ReviewIDs   []string         `json:"review_ids"`
	Reviews     []ReviewResponse `json:"reviews"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// CampgroundSummaryResponse is the index-page view of a campground
type CampgroundSummaryResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	ReviewCount int     `json:"review_count"`
}

// CampgroundListResponse represents the list of all campgrounds
type CampgroundListResponse struct {
	Campgrounds []CampgroundSummaryResponse `json:"campgrounds"`
	Total       int                         `json:"total"`
}

// ListCampgrounds returns every campground in insertion order
func (s *CampgroundService) ListCampgrounds(ctx context.Context) (*CampgroundListResponse, error) {
	campgrounds, err := s.store.Campgrounds().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CampgroundSummaryResponse, len(campgrounds))
	for i := range campgrounds {
		cg := &campgrounds[i]
		summaries[i] = CampgroundSummaryResponse{
			ID:          cg.ID,
			Title:       cg.Title,
			Image:       cg.Image,
			Price:       cg.Price,
			Description: cg.Description,
			Location:    cg.Location,
			ReviewCount: len(cg.ReviewIDs),
		}
	}

	return &CampgroundListResponse{
		Campgrounds: summaries,
		Total:       len(summaries),
	}, nil
}

// GetCampground retrieves a campground, resolving its reviews when asked
func (s *CampgroundService) GetCampground(ctx context.Context, id string, includeReviews bool) (*CampgroundResponse, error) {
	var (
		campground *models.Campground
		err        error
	)
	if includeReviews {
		campground, err = s.store.Campgrounds().GetWithReviews(ctx, id)
	} else {
		campground, err = s.store.Campgrounds().GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(campground)
	if includeReviews && resp.Reviews == nil {
		resp.Reviews = []ReviewResponse{}
	}
	return resp, nil
}

// CreateCampground validates req and stores it as a new campground
func (s *CampgroundService) CreateCampground(ctx context.Context, req *validation.CampgroundInput) (*CampgroundResponse, error) {
	if err := s.validator.Validate(validation.Campground, req); err != nil {
		return nil, err
	}

	campground := &models.Campground{
		Title:       req.Title,
		Image:       req.Image,
		Price:       *req.Price,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.store.Campgrounds().Create(ctx, campground); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("campground_id", campground.ID).Info("Campground created")
	return s.toResponse(campground), nil
}

// UpdateCampground validates req and replaces the campground's editable fields
func (s *CampgroundService) UpdateCampground(ctx context.Context, id string, req *validation.CampgroundInput) (*CampgroundResponse, error) {
	if err := s.validator.Validate(validation.Campground, req); err != nil {
		return nil, err
	}

	campground := &models.Campground{
		BaseModel:   models.BaseModel{ID: id},
		Title:       req.Title,
		Image:       req.Image,
		Price:       *req.Price,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.store.Campgrounds().Update(ctx, campground); err != nil {
		return nil, err
	}

	updated, err := s.store.Campgrounds().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(updated), nil
}

// DeleteCampground deletes the campground together with all of its reviews
func (s *CampgroundService) DeleteCampground(ctx context.Context, id string) error {
	_, deleted, err := s.relations.DeleteCampground(ctx, id)
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campground_id":   id,
		"reviews_deleted": deleted,
	}).Info("Campground deleted")
	return nil
}

func (s *CampgroundService) toResponse(campground *models.Campground) *CampgroundResponse {
	reviewIDs := campground.ReviewIDs
	if reviewIDs == nil {
		reviewIDs = []string{}
	}

	var reviews []ReviewResponse
	if campground.Reviews != nil {
		reviews = make([]ReviewResponse, len(campground.Reviews))
		for i := range campground.Reviews {
			reviews[i] = *toReviewResponse(&campground.Reviews[i])
		}
	}

	return &CampgroundResponse{
		ID:          campground.ID,
		Title:       campground.Title,
		Image:       campground.Image,
		Price:       campground.Price,
		Description: campground.Description,
		Location:    campground.Location,
		ReviewIDs:   reviewIDs,
		Reviews:     reviews,
		CreatedAt:   formatTime(campground.CreatedAt),
		UpdatedAt:   formatTime(campground.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
