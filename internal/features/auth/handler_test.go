package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/joborbit/backend/internal/config"
	"github.com/joborbit/backend/internal/middleware"
	"github.com/joborbit/backend/internal/pkg/token"
)

func testRouter(appEnv string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &config.Config{
		AppEnv:         appEnv,
		JWTSecret:      "test-secret",
		JWTExpireHours: 1,
	})
	return r
}

func tokenCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.CookieName {
			return ck
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func TestIssueToken_SetsVerifiableCookie(t *testing.T) {
	r := testRouter("development")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])

	ck := tokenCookie(t, w.Result())
	require.True(t, ck.HttpOnly)
	require.False(t, ck.Secure)
	require.Equal(t, http.SameSiteStrictMode, ck.SameSite)

	claims, err := token.Validate(ck.Value, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestIssueToken_ProductionCookieAttributes(t *testing.T) {
	r := testRouter("production")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	ck := tokenCookie(t, w.Result())
	require.True(t, ck.Secure)
	require.Equal(t, http.SameSiteNoneMode, ck.SameSite)
}

func TestIssueToken_RejectsBadEmail(t *testing.T) {
	r := testRouter("development")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	r := testRouter("development")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jwt-logout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	ck := tokenCookie(t, w.Result())
	require.Empty(t, ck.Value)
	require.Less(t, ck.MaxAge, 0)
}
