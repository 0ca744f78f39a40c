package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/tender-marketplace/pkg/helpers"
	"github.com/oksasatya/tender-marketplace/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	ParseAccessToken(token string) (*helpers.Claims, error)
}

// Auth requires an `Authorization: Bearer <token>` header. A missing or
// malformed header is 401; a token that fails verification is 403. On
// success userID and userEmail are set in the Gin context.
func Auth(jwt TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Abort(c, http.StatusUnauthorized, "Missing token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusForbidden, "Invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
