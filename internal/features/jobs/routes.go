package jobs

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	router.GET("/jobs", handler.ListAll)
	router.GET("/all-jobs", handler.Search)
	router.GET("/jobs/:email", handler.ListByBuyer)
	router.GET("/job/:id", handler.Get)
	router.POST("/add-jobs", handler.Create)
	router.PUT("/update-job/:id", handler.Update)
	router.DELETE("/job/:id", handler.Delete)

	return repo
}
