// @title JobOrbit API
// @version 1.0
// @description REST backend for the JobOrbit freelance marketplace: jobs, bids, and cookie-based JWT auth
// @host localhost:9000
// @BasePath /
// @schemes http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/joborbit/backend/docs"
	"github.com/joborbit/backend/internal/config"
	"github.com/joborbit/backend/internal/database"
	"github.com/joborbit/backend/internal/middleware"
	"github.com/joborbit/backend/internal/pkg/logger"
	"github.com/joborbit/backend/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogFile)

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(context.Background())
	logger.Log.WithField("db", cfg.MongoDB).Info("Connected to MongoDB")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Liveness
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from JobOrbit Server....")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, db.Database, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited")
}
