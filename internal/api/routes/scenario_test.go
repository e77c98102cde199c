//go:build integration
// +build integration

package routes

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"yelpcamp/internal/api/middleware"
	"yelpcamp/internal/config"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/repository/mongodb"
	"yelpcamp/internal/service"
	"yelpcamp/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampgroundLifecycle_Postgres(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	t.Cleanup(base.CleanTestDB)

	runLifecycle(t, repository.NewGormStore(base.DB), base.Config.Environment)
}

func TestCampgroundLifecycle_Mongo(t *testing.T) {
	client, db := testutils.SetupMongo(t)

	runLifecycle(t, mongodb.NewStore(client, db, true), "test")
}

func runLifecycle(t *testing.T, store repository.Store, env string) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: env}
	s := testutils.NewHTTPTestSuite(middleware.MethodOverride(SetupRoutes(store, cfg)))

	// Create through the HTML form
	form := url.Values{
		"title":       {"Ridge View"},
		"image":       {"https://example.com/ridge.jpg"},
		"price":       {"25"},
		"description": {"Quiet sites above the river"},
		"location":    {"Boulder, Colorado"},
	}
	location := testutils.AssertRedirect(t, s.Form("/campgrounds", form), "")
	require.True(t, strings.HasPrefix(location, "/campgrounds/"))
	id := strings.TrimPrefix(location, "/campgrounds/")

	var created service.CampgroundResponse
	testutils.AssertJSONResponse(t, s.JSON(http.MethodGet, location, nil), http.StatusOK, &created)
	assert.Equal(t, "Ridge View", created.Title)
	assert.Equal(t, 25.0, created.Price)
	assert.Empty(t, created.Reviews)

	// Invalid payloads never reach the store
	testutils.AssertErrorResponse(t,
		s.JSON(http.MethodPost, "/campgrounds", map[string]interface{}{"title": "No price"}),
		http.StatusBadRequest, `"image" is required`)

	// Review
	testutils.AssertRedirect(t,
		s.Form(location+"/reviews", url.Values{"body": {"Nice"}, "rating": {"5"}}),
		location)
	testutils.AssertErrorResponse(t,
		s.JSON(http.MethodPost, location+"/reviews", map[string]interface{}{"body": "x", "rating": 9}),
		http.StatusBadRequest, `"rating" must be less than or equal to 5`)

	var withReview service.CampgroundResponse
	testutils.AssertJSONResponse(t, s.JSON(http.MethodGet, location, nil), http.StatusOK, &withReview)
	require.Len(t, withReview.Reviews, 1)
	assert.Equal(t, "Nice", withReview.Reviews[0].Body)
	assert.Equal(t, 5, withReview.Reviews[0].Rating)
	reviewID := withReview.Reviews[0].ID

	page := s.Page(location)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Ridge View")
	assert.Contains(t, page.Body.String(), "Nice")

	// Edit through the override form
	form.Set("title", "Ridge View East")
	testutils.AssertRedirect(t, s.Form(location+"?_method=PUT", form), location)

	var listed service.CampgroundListResponse
	testutils.AssertJSONResponse(t, s.JSON(http.MethodGet, "/campgrounds", nil), http.StatusOK, &listed)
	require.Equal(t, 1, listed.Total)
	assert.Equal(t, "Ridge View East", listed.Campgrounds[0].Title)
	assert.Equal(t, 1, listed.Campgrounds[0].ReviewCount)

	// Delete cascades to the review
	testutils.AssertRedirect(t, s.Form(location+"?_method=DELETE", nil), "/campgrounds")

	testutils.AssertErrorResponse(t, s.JSON(http.MethodGet, location, nil), http.StatusNotFound, "campground not found")
	testutils.AssertErrorResponse(t,
		s.JSON(http.MethodPost, location+"/reviews", map[string]interface{}{"body": "late", "rating": 3}),
		http.StatusNotFound, "campground not found")
	testutils.AssertErrorResponse(t, s.JSON(http.MethodDelete, "/campgrounds/"+id, nil), http.StatusNotFound, "campground not found")

	_, err := store.Reviews().GetByID(context.Background(), reviewID)
	assert.Error(t, err)

	left, err := store.Reviews().GetByIDs(context.Background(), []string{reviewID})
	require.NoError(t, err)
	assert.Empty(t, left)
}
