package testutils

import (
	"yelpcamp/internal/database/models"
	"yelpcamp/internal/validation"
)

// CampgroundFactory provides methods to create test Campground data
type CampgroundFactory struct{}

// NewCampgroundFactory creates a new CampgroundFactory
func NewCampgroundFactory() *CampgroundFactory {
	return &CampgroundFactory{}
}

// Create creates a test Campground with default values and no id
func (f *CampgroundFactory) Create() *models.Campground {
	return &models.Campground{
		Title:       "Ridge View",
		Image:       "https://example.com/ridge.jpg",
		Price:       25,
		Description: "Quiet sites above the river",
		Location:    "Boulder, Colorado",
	}
}

// WithTitle sets a custom title for the campground
func (f *CampgroundFactory) WithTitle(title string) *models.Campground {
	cg := f.Create()
	cg.Title = title
	return cg
}

// Input returns a valid request payload for the default campground
func (f *CampgroundFactory) Input() *validation.CampgroundInput {
	cg := f.Create()
	price := cg.Price
	return &validation.CampgroundInput{
		Title:       cg.Title,
		Image:       cg.Image,
		Price:       &price,
		Description: cg.Description,
		Location:    cg.Location,
	}
}

// ReviewFactory provides methods to create test Review data
type ReviewFactory struct{}

// NewReviewFactory creates a new ReviewFactory
func NewReviewFactory() *ReviewFactory {
	return &ReviewFactory{}
}

// Create creates a test Review with default values and no id
func (f *ReviewFactory) Create() *models.Review {
	return &models.Review{
		Body:   "Nice",
		Rating: 5,
	}
}

// WithRating sets a custom rating for the review
func (f *ReviewFactory) WithRating(rating int) *models.Review {
	r := f.Create()
	r.Rating = rating
	return r
}

// Input returns a valid request payload for the default review
func (f *ReviewFactory) Input() *validation.ReviewInput {
	r := f.Create()
	rating := r.Rating
	return &validation.ReviewInput{Body: r.Body, Rating: &rating}
}
