package middleware

import (
	"fmt"
	"io"
	"runtime/debug"

	"yelpcamp/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a forwarded error so the
// ErrorResponder answers it like any other failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context()).
			WithField("stack", string(debug.Stack())).
			Errorf("Recovered from panic: %v", recovered)

		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
