package repository

import (
	"context"
	"sync"

	"github.com/Lmsantos89/boat-manager-app/internal/domain"
)

// MemoryUserRepository is an in-memory UserRepository used in tests and
// local development. Each operation is atomic under its mutex, mirroring the
// per-row atomicity the MySQL implementation gets from the database.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]domain.User
}

// NewMemoryUserRepository returns an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[uint]domain.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := u
	return &user, nil
}

// MemoryBoatRepository is an in-memory BoatRepository used in tests and
// local development.
type MemoryBoatRepository struct {
	mu     sync.Mutex
	nextID uint
	boats  []domain.Boat // insertion order preserved for FindByOwner
}

// NewMemoryBoatRepository returns an empty in-memory boat repository.
func NewMemoryBoatRepository() *MemoryBoatRepository {
	return &MemoryBoatRepository{nextID: 1}
}

func (r *MemoryBoatRepository) Create(_ context.Context, boat *domain.Boat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	boat.ID = r.nextID
	r.nextID++
	r.boats = append(r.boats, *boat)
	return nil
}

func (r *MemoryBoatRepository) Save(_ context.Context, boat *domain.Boat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.boats {
		if r.boats[i].ID == boat.ID {
			r.boats[i] = *boat
			return nil
		}
	}
	r.boats = append(r.boats, *boat)
	return nil
}

func (r *MemoryBoatRepository) FindByOwner(_ context.Context, ownerID uint) ([]domain.Boat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	boats := []domain.Boat{}
	for _, b := range r.boats {
		if b.OwnerID == ownerID {
			boats = append(boats, b)
		}
	}
	return boats, nil
}

func (r *MemoryBoatRepository) FindByIDAndOwner(_ context.Context, id, ownerID uint) (*domain.Boat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.boats {
		if b.ID == id && b.OwnerID == ownerID {
			boat := b
			return &boat, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryBoatRepository) Delete(_ context.Context, boat *domain.Boat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.boats {
		if r.boats[i].ID == boat.ID {
			r.boats = append(r.boats[:i], r.boats[i+1:]...)
			return nil
		}
	}
	return nil
}
