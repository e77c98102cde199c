package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"yelpcamp/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func httptestServe(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func healthRouter(p handlers.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewHealthHandler(p)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
	return router
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router := healthRouter(pingerFunc(func(context.Context) error { return nil }))

		w := httptestServe(router, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handlers.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Services["database"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		router := healthRouter(pingerFunc(func(context.Context) error { return errors.New("no route to host") }))

		w := httptestServe(router, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "no route to host")
	})
}

func TestReadyAndLive(t *testing.T) {
	down := healthRouter(pingerFunc(func(context.Context) error { return errors.New("down") }))

	w := httptestServe(down, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptestServe(down, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
