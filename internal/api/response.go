package api

import (
	"errors"
	"strings" // String manipulation

	"github.com/Lmsantos89/boat-manager-app/internal/domain"
	"github.com/go-playground/validator/v10" // Validation error inspection
)

// AuthResponse is the body of every /api/auth reply. Exactly one of Token
// and Message is set; the other serializes as null.
type AuthResponse struct {
	Token   *string `json:"token"`   // JWT token, null on failure
	Message *string `json:"message"` // Human-readable outcome, null on login success
}

// authToken builds a successful login response.
func authToken(token string) AuthResponse {
	return AuthResponse{Token: &token}
}

// authMessage builds a token-less response carrying only a message.
func authMessage(message string) AuthResponse {
	return AuthResponse{Message: &message}
}

// BoatResponse is the outward shape of a boat. The owner reference is
// deliberately absent.
type BoatResponse struct {
	ID          uint   `json:"id"`          // Assigned identifier
	Name        string `json:"name"`        // Boat name
	Description string `json:"description"` // Boat description
}

// toBoatResponse converts a domain boat to its outward shape.
func toBoatResponse(b domain.Boat) BoatResponse {
	return BoatResponse{ID: b.ID, Name: b.Name, Description: b.Description}
}

// validationFields extracts a field-level message map from a gin binding
// error. Returns nil if the error is not a validation failure (e.g. the
// body could not be parsed at all).
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Field() + " is required"
	}
	return fields
}
