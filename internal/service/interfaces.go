package service

import (
	"context"

	"yelpcamp/internal/validation"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CampgroundServiceInterface defines the interface for campground service
type CampgroundServiceInterface interface {
	ListCampgrounds(ctx context.Context) (*CampgroundListResponse, error)
	GetCampground(ctx context.Context, id string, includeReviews bool) (*CampgroundResponse, error)
	CreateCampground(ctx context.Context, req *validation.CampgroundInput) (*CampgroundResponse, error)
	UpdateCampground(ctx context.Context, id string, req *validation.CampgroundInput) (*CampgroundResponse, error)
	DeleteCampground(ctx context.Context, id string) error
}

// ReviewServiceInterface defines the interface for review service
type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, campgroundID string, req *validation.ReviewInput) (*ReviewResponse, error)
}

// Ensure services implement their interfaces
var (
	_ CampgroundServiceInterface = (*CampgroundService)(nil)
	_ ReviewServiceInterface     = (*ReviewService)(nil)
)
