package api

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/Lmsantos89/boat-manager-app/internal/service"
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AuthRequest carries the credentials for both registration and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user account
func RegisterHandler(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AuthRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Distinguish missing fields from an unparseable body
			if fields := validationFields(err); fields != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
				return
			}
			c.JSON(http.StatusBadRequest, authMessage("Invalid request format"))
			return
		}
		if err := authSvc.Register(c.Request.Context(), req.Username, req.Password); err != nil {
			// Duplicate username is the only client-visible failure
			if errors.Is(err, service.ErrUsernameTaken) {
				c.JSON(http.StatusBadRequest, authMessage("Registration failed: Username already exists"))
				return
			}
			logrus.WithField("error", err.Error()).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, authMessage("An unexpected error occurred"))
			return
		}
		c.JSON(http.StatusOK, authMessage("User registered successfully"))
	}
}

// LoginHandler authenticates a user and returns a signed token
func LoginHandler(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AuthRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			if fields := validationFields(err); fields != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
				return
			}
			c.JSON(http.StatusBadRequest, authMessage("Invalid request format"))
			return
		}
		token, err := authSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			// Unknown user and wrong password answer identically
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, authMessage("Invalid username or password"))
				return
			}
			logrus.WithField("error", err.Error()).Error("Login failed")
			c.JSON(http.StatusInternalServerError, authMessage("An unexpected error occurred"))
			return
		}
		c.JSON(http.StatusOK, authToken(token)) // Return the token in the response
	}
}
