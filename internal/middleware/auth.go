package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/joborbit/backend/internal/pkg/response"
	"github.com/joborbit/backend/internal/pkg/token"
)

// CookieName is the cookie carrying the signed token.
const CookieName = "token"

// Auth verifies the token cookie and stores the embedded email in the
// context. Requests without a valid cookie are rejected with 401.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			response.Unauthorized(c, "Unauthorized access")
			c.Abort()
			return
		}

		claims, err := token.Validate(tokenString, secret)
		if err != nil {
			response.Unauthorized(c, "Unauthorized access")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireOwnEmail lets a request through only when the authenticated email
// matches the :email path parameter. Runs after Auth.
func RequireOwnEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("email") != c.Param("email") {
			response.Forbidden(c, "Forbidden access")
			c.Abort()
			return
		}
		c.Next()
	}
}
