package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joborbit/backend/internal/config"
	"github.com/joborbit/backend/internal/pkg/response"
	"github.com/joborbit/backend/internal/pkg/token"
	"github.com/joborbit/backend/internal/pkg/validator"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// IssueToken godoc
// @Summary Issue an auth token
// @Description Signs a JWT for the given email and sets it as an httpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /jwt [post]
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !validator.IsValidEmail(req.Email) {
		response.BadRequest(c, "Invalid email address")
		return
	}

	tokenString, err := token.Generate(req.Email, token.Config{
		Secret: h.cfg.JWTSecret,
		Expiry: time.Duration(h.cfg.JWTExpireHours) * time.Hour,
	})
	if err != nil {
		response.InternalServerError(c, "Failed to sign token")
		return
	}

	setTokenCookie(c, tokenString, h.cfg.IsProduction())
	c.JSON(200, TokenResponse{Success: true})
}

// Logout godoc
// @Summary Clear the auth cookie
// @Description Expires the token cookie. The token stays valid until its natural expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse
// @Router /jwt-logout [get]
func (h *Handler) Logout(c *gin.Context) {
	clearTokenCookie(c, h.cfg.IsProduction())
	c.JSON(200, TokenResponse{Success: true})
}
