package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cecepns/lily-mily-kosmetik/config"
	"github.com/cecepns/lily-mily-kosmetik/database"
	"github.com/cecepns/lily-mily-kosmetik/routes"
	"github.com/cecepns/lily-mily-kosmetik/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.LoadConfig()

	// Create the upload directory before anything can reference it
	if err := storage.Init(cfg.UploadDir); err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	// Connect to database
	database.ConnectDatabase()
	defer database.DB.Close()

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Uploaded images are served straight from disk
	router.Static("/uploads", cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(router)

	// Start server
	router.Run(":" + cfg.ServerPort)
}
