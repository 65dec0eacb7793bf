package main

import (
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/config"
	"github.com/ameerhamza-malik/ItemManagement/controllers"
	"github.com/ameerhamza-malik/ItemManagement/database"
	"github.com/ameerhamza-malik/ItemManagement/middleware"
	"github.com/ameerhamza-malik/ItemManagement/routes"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectToDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	h := controllers.NewHandler(db, cfg, log)

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	// Unexpected faults collapse to a generic response with no internal
	// detail; the cause is only logged server side.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	routes.SetupRouter(router, h)

	log.Infof("Server starting on :%s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
