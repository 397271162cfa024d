package main

import (
	"log" // log package is needed for logging

	"github.com/Lmsantos89/boat-manager-app/internal/api"        // Custom package for API handlers
	"github.com/Lmsantos89/boat-manager-app/internal/auth"       // Custom package for token handling
	"github.com/Lmsantos89/boat-manager-app/internal/config"     // Custom package for configuration
	"github.com/Lmsantos89/boat-manager-app/internal/repository" // Custom package for persistence
	"github.com/Lmsantos89/boat-manager-app/internal/service"    // Custom package for business logic

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire repositories, services and routes
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authSvc := service.NewAuthService(repository.NewGormUserRepository(db), tokens)
	boatSvc := service.NewBoatService(repository.NewGormBoatRepository(db), authSvc)
	r := api.NewRouter(authSvc, boatSvc, tokens)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
