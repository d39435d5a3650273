package middleware

import (
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a Bearer token and loads the user it names.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			c.Error(apperror.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		userID, err := authUC.ParseToken(tokenString)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		// Fresh lookup so deleted users lose access before their token expires
		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUser), user)

		c.Next()
	}
}
