package middleware

import (
	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors attached by handlers and returns
// standardized responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			httpErr := apperrors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%v",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				err)

			c.JSON(httpErr.Status, gin.H{
				"error": gin.H{
					"message": httpErr.Message,
					"code":    httpErr.Code,
				},
			})
			return
		}
	}
}
