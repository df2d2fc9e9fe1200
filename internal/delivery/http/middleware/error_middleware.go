package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// Delivery failures are logged where they happen; only unexpected ones are logged here
			if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error("request failed",
					"request_id", c.GetString("RequestID"),
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("internal server error",
			"request_id", c.GetString("RequestID"),
			"path", c.FullPath(),
			"error", err.Error(),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
