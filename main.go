package main

import (
	"log"
	"net/http"
	"os"

	"room-management/config"
	"room-management/jobs"
	"room-management/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Hotel Room Management API
// @version 1.0
// @description Back-office inventory and status tracking for hotel rooms and room types.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	roomService, _ := routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	jobs.SetMaintenanceLister(roomService)
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
