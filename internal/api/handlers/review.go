package handlers

import (
	"net/http"

	"yelpcamp/internal/service"
	"yelpcamp/internal/validation"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create handles POST /campgrounds/:id/reviews
// @Summary Review a campground
// @Description Create a review and attach it to the campground, then redirect to the campground
// @Tags reviews
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Produce json
// @Param id path string true "Campground ID"
// @Param review body validation.ReviewInput true "Review data"
// @Success 302 {string} string "Redirect to /campgrounds/{id}"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Campground not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /campgrounds/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) error {
	var req validation.ReviewInput
	if err := bind(c, &req); err != nil {
		return err
	}

	campgroundID := c.Param("id")
	if _, err := h.reviewService.CreateReview(c.Request.Context(), campgroundID, &req); err != nil {
		return err
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+campgroundID)
	return nil
}
