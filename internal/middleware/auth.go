package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/constants"
	apierrors "github.com/pleone55/CS493-Final/internal/errors"
)

// TokenVerifier yields the subject of a valid bearer token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth validates the bearer token and stores the subject in the
// context as the owner identity for ownership checks.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		subject, err := verifier.Verify(token)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyOwner, subject)
		c.Next()
	}
}

func bearerToken(header string) string {
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}

// GetOwner retrieves the verified owner identity from the context.
func GetOwner(c *gin.Context) (string, bool) {
	owner, exists := c.Get(constants.ContextKeyOwner)
	if !exists {
		return "", false
	}
	subject, ok := owner.(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
