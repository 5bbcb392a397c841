// Package middleware holds the gin middleware chain.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"klevant/internal/infrastructure/auth"
	"klevant/internal/shared/constants"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/utils"
)

// Auth validates the bearer token and stores the principal in the request
// context. Handlers read it back through utils.ActorID.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authorization header is required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAccess(parts[1])
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}
