package handlers

import (
	"net/http"

	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// Home handles GET /
// @Summary Home page
// @Tags home
// @Produce html
// @Produce json
// @Success 200 {object} map[string]interface{} "Home page"
// @Router / [get]
func Home(c *gin.Context) {
	render(c, http.StatusOK, views.Home, gin.H{"message": "home"})
}
