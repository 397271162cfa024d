package api

import (
	"github.com/Lmsantos89/boat-manager-app/internal/auth"
	"github.com/Lmsantos89/boat-manager-app/internal/middleware"
	"github.com/Lmsantos89/boat-manager-app/internal/service"
	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires all routes onto a gin engine. Shared by the server
// entrypoint and the HTTP tests.
func NewRouter(authSvc *service.AuthService, boatSvc *service.BoatService, tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery()) // Recovery converts panics into generic 500s

	// Auth routes
	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", RegisterHandler(authSvc)) // Registration endpoint
	authGroup.POST("/login", LoginHandler(authSvc))       // Login endpoint

	// Boat routes (protected by JWT)
	boatGroup := r.Group("/api/boats")
	boatGroup.Use(middleware.JWTAuthMiddleware(tokens))
	boatGroup.GET("", ListBoatsHandler(boatSvc))         // List owned boats
	boatGroup.POST("", CreateBoatHandler(boatSvc))       // Create boat
	boatGroup.GET("/:id", GetBoatHandler(boatSvc))       // Get owned boat
	boatGroup.PUT("/:id", UpdateBoatHandler(boatSvc))    // Update owned boat
	boatGroup.DELETE("/:id", DeleteBoatHandler(boatSvc)) // Delete owned boat

	return r
}
