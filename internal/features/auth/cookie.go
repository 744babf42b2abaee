package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joborbit/backend/internal/middleware"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// setTokenCookie writes the auth cookie. In production the frontend lives on
// another origin, so the cookie is cross-site and requires secure transport;
// in development it stays same-site and plain http works.
func setTokenCookie(c *gin.Context, tokenString string, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.CookieName, tokenString, cookieMaxAge, "/", "", production, true)
}

// clearTokenCookie expires the cookie client-side. The token itself stays
// valid until its own expiry; there is no server-side revocation.
func clearTokenCookie(c *gin.Context, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", production, true)
}
