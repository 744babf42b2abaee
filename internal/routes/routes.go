package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joborbit/backend/internal/config"
	"github.com/joborbit/backend/internal/features/auth"
	"github.com/joborbit/backend/internal/features/bids"
	"github.com/joborbit/backend/internal/features/jobs"
)

// SetupRoutes wires every feature. The jobs repository doubles as the bid
// counter for the bids service.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	auth.RegisterRoutes(router, cfg)
	jobsRepo := jobs.RegisterRoutes(router, db)
	bids.RegisterRoutes(router, db, cfg, jobsRepo)
}
