package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yelpcamp/internal/api/middleware"
	"yelpcamp/internal/config"
	"yelpcamp/internal/mocks"
	"yelpcamp/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, env string) (http.Handler, *mocks.MockStore) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	return middleware.MethodOverride(SetupRoutes(store, &config.Config{Environment: env})), store
}

func TestSetupRoutes_UnknownPath(t *testing.T) {
	handler, _ := newTestHandler(t, "test")
	s := testutils.NewHTTPTestSuite(handler)

	testutils.AssertErrorResponse(t, s.JSON(http.MethodGet, "/nowhere", nil), http.StatusNotFound, "page not found")

	page := s.Page("/campgrounds/abc/reviews")
	assert.Equal(t, http.StatusNotFound, page.Code)
	assert.Contains(t, page.Body.String(), "page not found")
}

func TestSetupRoutes_Home(t *testing.T) {
	handler, _ := newTestHandler(t, "test")
	s := testutils.NewHTTPTestSuite(handler)

	rec := s.Page("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestSetupRoutes_NewForm(t *testing.T) {
	handler, _ := newTestHandler(t, "test")
	rec := testutils.NewHTTPTestSuite(handler).Page("/campgrounds/new")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/campgrounds"`)
}

func TestSetupRoutes_Swagger(t *testing.T) {
	for env, want := range map[string]int{"development": http.StatusOK, "production": http.StatusNotFound} {
		t.Run(env, func(t *testing.T) {
			handler, _ := newTestHandler(t, env)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
			assert.Equal(t, want, rec.Code)
		})
	}
}

func TestSetupRoutes_HealthLive(t *testing.T) {
	handler, _ := newTestHandler(t, "test")
	rec := testutils.NewHTTPTestSuite(handler).JSON(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupRoutes_UnsupportedOverrideIsIgnored(t *testing.T) {
	handler, _ := newTestHandler(t, "test")
	s := testutils.NewHTTPTestSuite(handler)

	// POST /campgrounds/:id has no route, so an ignored override lands on NoRoute
	rec := s.JSON(http.MethodPost, "/campgrounds/abc?_method=TRACE", nil)
	testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "page not found")
}
