package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"yelpcamp/internal/api/middleware"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(views.MustLoad())
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	std := logrus.StandardLogger()
	var buf bytes.Buffer
	prevOut, prevFmt, prevLevel := std.Out, std.Formatter, std.Level
	std.SetOutput(&buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.InfoLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFmt)
		std.SetLevel(prevLevel)
	})
	return &buf
}

func TestRequestID(t *testing.T) {
	router := newEngine()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		w := serve(router, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestLogger_WritesAccessEntry(t *testing.T) {
	buf := captureLogs(t)
	router := newEngine()
	router.Use(middleware.RequestID(), middleware.Logger())
	router.GET("/campgrounds", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/campgrounds?x=1", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	serve(router, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/campgrounds?x=1", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "warning", entry["level"])
}

func TestErrorResponder(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: apperrors.NewValidationError("title", `"title" is required`), wantStatus: http.StatusBadRequest, wantMsg: `"title" is required`},
		{name: "not found", err: apperrors.ErrCampgroundNotFound, wantStatus: http.StatusNotFound, wantMsg: "campground not found"},
		{name: "store", err: apperrors.NewStoreError("get campground", errors.New("secret detail")), wantStatus: http.StatusInternalServerError, wantMsg: "failed to get campground"},
		{name: "unknown", err: errors.New("secret detail"), wantStatus: http.StatusInternalServerError, wantMsg: apperrors.DefaultMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEngine()
			router.Use(middleware.ErrorResponder())
			router.GET("/", func(c *gin.Context) {
				_ = c.Error(tt.err)
				c.Abort()
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept", "application/json")
			w := serve(router, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, `{"error":`+quote(tt.wantMsg)+`,"code":`+itoa(tt.wantStatus)+`}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "secret detail")
		})
	}
}

func TestErrorResponder_HTML(t *testing.T) {
	router := newEngine()
	router.Use(middleware.ErrorResponder())
	router.NoRoute(middleware.NoRoute)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "page not found")
}

func TestErrorResponder_AlreadyWrittenOnlyLogs(t *testing.T) {
	buf := captureLogs(t)
	router := newEngine()
	router.Use(middleware.ErrorResponder())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		_ = c.Error(errors.New("late failure"))
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
	assert.Contains(t, buf.String(), "late failure")
}

func TestRecovery_PanicBecomesServerError(t *testing.T) {
	captureLogs(t)
	router := newEngine()
	router.Use(middleware.ErrorResponder(), middleware.Recovery())
	router.GET("/", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	w := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong","code":500}`, w.Body.String())
}

func TestMethodOverride(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Method))
	})
	handler := middleware.MethodOverride(echo)

	tests := []struct {
		name   string
		method string
		target string
		header string
		want   string
	}{
		{name: "query put", method: http.MethodPost, target: "/campgrounds/a?_method=PUT", want: http.MethodPut},
		{name: "query delete lowercase", method: http.MethodPost, target: "/campgrounds/a?_method=delete", want: http.MethodDelete},
		{name: "header", method: http.MethodPost, target: "/campgrounds/a", header: "PATCH", want: http.MethodPatch},
		{name: "unsupported verb", method: http.MethodPost, target: "/campgrounds/a?_method=TRACE", want: http.MethodPost},
		{name: "only POST is rewritten", method: http.MethodGet, target: "/campgrounds/a?_method=DELETE", want: http.MethodGet},
		{name: "plain post", method: http.MethodPost, target: "/campgrounds", want: http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(middleware.MethodOverrideHeader, tt.header)
			}
			w := serve(handler, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
