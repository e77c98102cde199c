package service

import (
	"context"

	"yelpcamp/internal/database/models"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/validation"
)

// ReviewService handles business logic for reviews
type ReviewService struct {
	relations *RelationshipManager
	validator *validation.Validator
}

// NewReviewService creates a new review service
func NewReviewService(relations *RelationshipManager, validator *validation.Validator) *ReviewService {
	return &ReviewService{
		relations: relations,
		validator: validator,
	}
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// CreateReview validates req, stores the review and attaches it to the campground
func (s *ReviewService) CreateReview(ctx context.Context, campgroundID string, req *validation.ReviewInput) (*ReviewResponse, error) {
	if err := s.validator.Validate(validation.Review, req); err != nil {
		return nil, err
	}

	review := &models.Review{
		Body:   req.Body,
		Rating: *req.Rating,
	}
	if err := s.relations.Attach(ctx, campgroundID, review); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campground_id": campgroundID,
		"review_id":     review.ID,
	}).Info("Review created")
	return toReviewResponse(review), nil
}

func toReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		Body:      review.Body,
		Rating:    review.Rating,
		CreatedAt: formatTime(review.CreatedAt),
	}
}
