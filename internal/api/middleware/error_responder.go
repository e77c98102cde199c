package middleware

import (
	"yelpcamp/internal/api/handlers"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// ErrorResponder turns the last error forwarded by a handler into the response.
// It must run before (outside) Recovery so that recovered panics reach it.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := apperrors.HTTPStatus(err)
		message := apperrors.PublicMessage(err)
		if message == "" {
			message = apperrors.DefaultMessage
		}

		log := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		}).WithError(err)
		if status >= 500 {
			log.Error("Request failed")
		} else {
			log.Debug("Request rejected")
		}

		if c.Writer.Written() {
			return
		}

		body := handlers.ErrorResponse{Error: message, Code: status}
		switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
		case gin.MIMEJSON:
			c.JSON(status, body)
		default:
			c.HTML(status, views.Error, body)
		}
	}
}

// NoRoute reports unmatched paths and methods as a missing page
func NoRoute(c *gin.Context) {
	_ = c.Error(apperrors.ErrPageNotFound)
	c.Abort()
}
