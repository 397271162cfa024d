package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lmsantos89/boat-manager-app/internal/domain"
	"github.com/Lmsantos89/boat-manager-app/internal/repository"
	"github.com/sirupsen/logrus" // Logging library
)

// IdentityResolver maps a verified caller username to the durable identity
// used for ownership scoping. Implemented by AuthService.
type IdentityResolver interface {
	ResolveUserID(ctx context.Context, username string) (uint, error)
	ResolveUser(ctx context.Context, id uint) (*domain.User, error)
}

// BoatService enforces per-request ownership scoping on every boat
// operation. Each method takes the caller's username explicitly — identity
// is never carried in ambient state — resolves it to an owner ID first, and
// only ever touches the repository through owner-scoped primitives.
type BoatService struct {
	boats    repository.BoatRepository
	resolver IdentityResolver
}

// NewBoatService creates a BoatService over the given boat repository and
// identity resolver.
func NewBoatService(boats repository.BoatRepository, resolver IdentityResolver) *BoatService {
	return &BoatService{boats: boats, resolver: resolver}
}

// List returns all boats owned by the caller, in insertion order. A caller
// owning nothing gets an empty slice, not an error.
func (s *BoatService) List(ctx context.Context, username string) ([]domain.Boat, error) {
	ownerID, err := s.resolver.ResolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	boats, err := s.boats.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list boats: %w", err)
	}
	return boats, nil
}

// Create persists a new boat owned by the caller and returns it with its
// assigned ID. The owner's user record is resolved in full before creation;
// a caller that authenticated but is not a recognized owner gets ErrNotFound.
func (s *BoatService) Create(ctx context.Context, username, name, description string) (*domain.Boat, error) {
	ownerID, err := s.resolver.ResolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolver.ResolveUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	boat := domain.Boat{Name: name, Description: description, OwnerID: owner.ID}
	if err := s.boats.Create(ctx, &boat); err != nil {
		return nil, fmt.Errorf("create boat: %w", err)
	}
	// Log boat creation
	logrus.WithFields(logrus.Fields{
		"owner_id": owner.ID,
		"boat_id":  boat.ID,
	}).Info("Boat created")
	return &boat, nil
}

// Get returns the boat with the given ID only if the caller owns it. A boat
// owned by someone else yields ErrNotFound, same as one that does not exist.
func (s *BoatService) Get(ctx context.Context, username string, id uint) (*domain.Boat, error) {
	ownerID, err := s.resolver.ResolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, id, ownerID)
}

// Update replaces the name and description of an owned boat. The ID and
// owner are immutable; on a failed scoped lookup nothing is mutated.
func (s *BoatService) Update(ctx context.Context, username string, id uint, name, description string) (*domain.Boat, error) {
	ownerID, err := s.resolver.ResolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	boat, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	boat.Name = name
	boat.Description = description
	if err := s.boats.Save(ctx, boat); err != nil {
		return nil, fmt.Errorf("update boat: %w", err)
	}
	return boat, nil
}

// Delete permanently removes an owned boat, reporting whether anything was
// removed. A second delete of the same ID returns false, not an error.
func (s *BoatService) Delete(ctx context.Context, username string, id uint) (bool, error) {
	ownerID, err := s.resolver.ResolveUserID(ctx, username)
	if err != nil {
		return false, err
	}
	boat, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.boats.Delete(ctx, boat); err != nil {
		return false, fmt.Errorf("delete boat: %w", err)
	}
	// Log boat deletion
	logrus.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"boat_id":  id,
	}).Info("Boat deleted")
	return true, nil
}

// findOwned is the single owner-scoped lookup shared by Get, Update and
// Delete, so ownership logic lives in exactly one place.
func (s *BoatService) findOwned(ctx context.Context, id, ownerID uint) (*domain.Boat, error) {
	boat, err := s.boats.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find boat: %w", err)
	}
	return boat, nil
}
