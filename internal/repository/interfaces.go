package repository

import (
	"context"

	"yelpcamp/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CampgroundRepositoryInterface defines the interface for campground repository operations
type CampgroundRepositoryInterface interface {
	Create(ctx context.Context, campground *models.Campground) error
	GetByID(ctx context.Context, id string) (*models.Campground, error)
	GetWithReviews(ctx context.Context, id string) (*models.Campground, error)
	GetAll(ctx context.Context) ([]models.Campground, error)
	Update(ctx context.Context, campground *models.Campground) error
	AppendReview(ctx context.Context, campgroundID, reviewID string) error
	Delete(ctx context.Context, id string) (*models.Campground, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ReviewRepositoryInterface defines the interface for review repository operations
type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Review, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Store groups the repositories of one backend behind a shared transaction boundary
type Store interface {
	Campgrounds() CampgroundRepositoryInterface
	Reviews() ReviewRepositoryInterface
	// WithinTransaction runs fn with a Store bound to a single transaction.
	// fn must use the ctx and Store it is given, not the outer ones.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
