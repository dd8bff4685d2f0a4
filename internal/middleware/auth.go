package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/galeriaviva/gallery-api/internal/constants"
	apierrors "github.com/galeriaviva/gallery-api/internal/errors"
	"github.com/galeriaviva/gallery-api/internal/token"
)

// RequireAuth checks for a valid bearer token and stores the user ID in context
func RequireAuth(verifier token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := verifyBearer(c, verifier)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// OptionalAuth stores the user ID in context when a valid bearer token is
// present, and lets the request through anonymously otherwise
func OptionalAuth(verifier token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := verifyBearer(c, verifier); ok {
			c.Set(constants.ContextKeyUserID, userID)
		}
		c.Next()
	}
}

func verifyBearer(c *gin.Context, verifier token.Verifier) (uint64, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return 0, false
	}

	userID, err := verifier.Verify(tokenString)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
