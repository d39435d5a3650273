package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.Warn("Request failed", zap.Int("status", appErr.Code), zap.Error(appErr.Err), zap.String("path", c.FullPath()))
			}
			response.Error(c, appErr.Code, http.StatusText(appErr.Code), appErr.Message)
			return
		}

		// Unknown errors stay server-side.
		log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.FullPath()))
		response.Error(c, http.StatusInternalServerError, response.ErrInternalServer, "An unexpected error occurred. Please try again later.")
	}
}
