package handlers

import (
	"net/http"

	"yelpcamp/internal/service"
	"yelpcamp/internal/validation"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// CampgroundHandler handles HTTP requests for campground operations
type CampgroundHandler struct {
	campgroundService service.CampgroundServiceInterface
}

// NewCampgroundHandler creates a new campground handler
func NewCampgroundHandler(campgroundService service.CampgroundServiceInterface) *CampgroundHandler {
	return &CampgroundHandler{
		campgroundService: campgroundService,
	}
}

// Index handles GET /campgrounds
// @Summary List campgrounds
// @Description List every campground in insertion order
// @Tags campgrounds
// @Produce html
// @Produce json
// @Success 200 {object} service.CampgroundListResponse "Successfully retrieved campgrounds"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /campgrounds [get]
func (h *CampgroundHandler) Index(c *gin.Context) error {
	resp, err := h.campgroundService.ListCampgrounds(c.Request.Context())
	if err != nil {
		return err
	}
	render(c, http.StatusOK, views.CampgroundIndex, resp)
	return nil
}

// New handles GET /campgrounds/new
// @Summary Campground creation form
// @Tags campgrounds
// @Produce html
// @Success 200 {string} string "Creation form"
// @Router /campgrounds/new [get]
func (h *CampgroundHandler) New(c *gin.Context) error {
	render(c, http.StatusOK, views.CampgroundNew, &validation.CampgroundInput{})
	return nil
}

// Create handles POST /campgrounds
// @Summary Create a campground
// @Description Validate the payload, store it and redirect to the new campground
// @Tags campgrounds
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Produce json
// @Param campground body validation.CampgroundInput true "Campground data"
// @Success 302 {string} string "Redirect to /campgrounds/{id}"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /campgrounds [post]
func (h *CampgroundHandler) Create(c *gin.Context) error {
	var req validation.CampgroundInput
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.campgroundService.CreateCampground(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+resp.ID)
	return nil
}

// Show handles GET /campgrounds/:id
// @Summary Get a campground
// @Description Get a campground with its reviews resolved
// @Tags campgrounds
// @Produce html
// @Produce json
// @Param id path string true "Campground ID"
// @Success 200 {object} service.CampgroundResponse "Successfully retrieved campground"
// @Failure 404 {object} ErrorResponse "Campground not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /campgrounds/{id} [get]
func (h *CampgroundHandler) Show(c *gin.Context) error {
	resp, err := h.campgroundService.GetCampground(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		return err
	}
	render(c, http.StatusOK, views.CampgroundShow, resp)
	return nil
}

// Edit handles GET /campgrounds/:id/edit
// @Summary Campground edit form
// @Tags campgrounds
// @Produce html
// @Produce json
// @Param id path string true "Campground ID"
// @Success 200 {object} service.CampgroundResponse "Edit form"
// @Failure 404 {object} ErrorResponse "Campground not found"
// @Router /campgrounds/{id}/edit [get]
func (h *CampgroundHandler) Edit(c *gin.Context) error {
	resp, err := h.campgroundService.GetCampground(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		return err
	}
	render(c, http.StatusOK, views.CampgroundEdit, resp)
	return nil
}

// Update handles PUT /campgrounds/:id
// @Summary Update a campground
// @Description Replace the editable fields of a campground and redirect to it
// @Tags campgrounds
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Produce json
// @Param id path string true "Campground ID"
// @Param campground body validation.CampgroundInput true "Campground data"
// @Success 302 {string} string "Redirect to /campgrounds/{id}"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Campground not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /campgrounds/{id} [put]
func (h *CampgroundHandler) Update(c *gin.Context) error {
	var req validation.CampgroundInput
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.campgroundService.UpdateCampground(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+resp.ID)
	return nil
}

// Delete handles DELETE /campgrounds/:id
// @Summary Delete a campground
// @Description Delete a campground and every review it owns, then redirect to the list
// @Tags campgrounds
// @Produce html
// @Produce json
// @Param id path string true "Campground ID"
// @Success 302 {string} string "Redirect to /campgrounds"
// @Failure 404 {object} ErrorResponse "Campground not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /campgrounds/{id} [delete]
func (h *CampgroundHandler) Delete(c *gin.Context) error {
	if err := h.campgroundService.DeleteCampground(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}

	c.Redirect(http.StatusFound, "/campgrounds")
	return nil
}
