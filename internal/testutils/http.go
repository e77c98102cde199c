package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a full handler stack the way a browser or API client would
type HTTPTestSuite struct {
	Handler http.Handler
}

// NewHTTPTestSuite wraps handler for testing
func NewHTTPTestSuite(handler http.Handler) *HTTPTestSuite {
	return &HTTPTestSuite{Handler: handler}
}

// JSON sends body as JSON and asks for a JSON response
func (s *HTTPTestSuite) JSON(method, target string, body interface{}) *httptest.ResponseRecorder {
	var payload string
	if body != nil {
		raw, _ := json.Marshal(body)
		payload = string(raw)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return s.do(req)
}

// Form posts values as an HTML form would, including any _method override in target
func (s *HTTPTestSuite) Form(target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

// Page requests target as HTML
func (s *HTTPTestSuite) Page(target string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *HTTPTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.Handler.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
	assert.Equal(t, float64(expectedStatus), errorResponse["code"])
}

// AssertRedirect asserts a 302 to location and returns it
func AssertRedirect(t *testing.T, recorder *httptest.ResponseRecorder, location string) string {
	t.Helper()
	assert.Equal(t, http.StatusFound, recorder.Code)
	got := recorder.Header().Get("Location")
	if location != "" {
		assert.Equal(t, location, got)
	}
	return got
}
