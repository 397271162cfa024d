package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/Lmsantos89/boat-manager-app/internal/middleware"
	"github.com/Lmsantos89/boat-manager-app/internal/service"
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// BoatRequest carries the mutable boat fields for create and update. Any
// id or owner the client supplies is ignored; those are assigned by the
// server and immutable.
type BoatRequest struct {
	Name        string `json:"name" binding:"required"`        // Name must be provided
	Description string `json:"description" binding:"required"` // Description must be provided
}

// callerUsername returns the identity established by the JWT middleware.
func callerUsername(c *gin.Context) (string, bool) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		// Should not happen behind the middleware, but handled defensively
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}
	return username, true
}

// boatID parses the id path parameter. An unparseable id cannot name an
// owned boat, so it reports not found rather than a validation error.
func boatID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
		return 0, false
	}
	return uint(id), true
}

// ListBoatsHandler returns all boats owned by the caller
func ListBoatsHandler(boatSvc *service.BoatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := callerUsername(c)
		if !ok {
			return
		}
		boats, err := boatSvc.List(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to list boats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			return
		}
		resp := make([]BoatResponse, len(boats))
		for i, b := range boats {
			resp[i] = toBoatResponse(b)
		}
		c.JSON(http.StatusOK, resp) // Return the boat list
	}
}

// CreateBoatHandler creates a boat owned by the caller
func CreateBoatHandler(boatSvc *service.BoatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := callerUsername(c)
		if !ok {
			return
		}
		var req BoatRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			if fields := validationFields(err); fields != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		boat, err := boatSvc.Create(c.Request.Context(), username, req.Name, req.Description)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to create boat")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			return
		}
		c.JSON(http.StatusCreated, toBoatResponse(*boat)) // Return the created boat
	}
}

// GetBoatHandler returns one owned boat by id
func GetBoatHandler(boatSvc *service.BoatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := callerUsername(c)
		if !ok {
			return
		}
		id, ok := boatID(c)
		if !ok {
			return
		}
		boat, err := boatSvc.Get(c.Request.Context(), username, id)
		if err != nil {
			// Absent and not-owned are answered identically
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to get boat")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			return
		}
		c.JSON(http.StatusOK, toBoatResponse(*boat))
	}
}

// UpdateBoatHandler replaces the name and description of an owned boat
func UpdateBoatHandler(boatSvc *service.BoatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := callerUsername(c)
		if !ok {
			return
		}
		id, ok := boatID(c)
		if !ok {
			return
		}
		var req BoatRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			if fields := validationFields(err); fields != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		boat, err := boatSvc.Update(c.Request.Context(), username, id, req.Name, req.Description)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to update boat")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			return
		}
		c.JSON(http.StatusOK, toBoatResponse(*boat)) // Return the updated boat
	}
}

// DeleteBoatHandler permanently removes an owned boat
func DeleteBoatHandler(boatSvc *service.BoatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := callerUsername(c)
		if !ok {
			return
		}
		id, ok := boatID(c)
		if !ok {
			return
		}
		deleted, err := boatSvc.Delete(c.Request.Context(), username, id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to delete boat")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			return
		}
		// Repeated deletes of the same id report not found
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Boat not found"})
			return
		}
		c.Status(http.StatusOK) // Empty body on success
	}
}
