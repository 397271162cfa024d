package repository

import (
	"context"

	"github.com/Lmsantos89/boat-manager-app/internal/domain"
)

// BoatRepository persists boats. Every read primitive is parameterized by
// owner ID: there is deliberately no unscoped lookup, so ownership filtering
// is baked into the query rather than checked separately on each call path.
type BoatRepository interface {
	// Create persists a new boat and assigns its ID.
	Create(ctx context.Context, boat *domain.Boat) error
	// Save writes back an existing boat.
	Save(ctx context.Context, boat *domain.Boat) error
	// FindByOwner returns all boats owned by ownerID, in insertion order.
	FindByOwner(ctx context.Context, ownerID uint) ([]domain.Boat, error)
	// FindByIDAndOwner returns the boat with the given ID only if it is owned
	// by ownerID. A boat owned by someone else yields ErrNotFound, same as a
	// boat that does not exist.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Boat, error)
	// Delete permanently removes a boat.
	Delete(ctx context.Context, boat *domain.Boat) error
}
