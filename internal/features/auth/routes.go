package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/joborbit/backend/internal/config"
)

func RegisterRoutes(router *gin.Engine, cfg *config.Config) {
	handler := NewHandler(cfg)

	router.POST("/jwt", handler.IssueToken)
	router.GET("/jwt-logout", handler.Logout)
}
