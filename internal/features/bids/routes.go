package bids

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joborbit/backend/internal/config"
	"github.com/joborbit/backend/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, jobs JobCounter) {
	repo := NewRepository(db)
	service := NewService(repo, jobs)
	handler := NewHandler(service)

	router.POST("/add-bidJob", handler.Place)
	router.GET("/bid-jobs/:email", middleware.Auth(cfg.JWTSecret), middleware.RequireOwnEmail(), handler.ListForUser)
	router.PATCH("/bid-status-update/:id", handler.UpdateStatus)
}
