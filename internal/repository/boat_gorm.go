package repository

import (
	"context"
	"errors"

	"github.com/Lmsantos89/boat-manager-app/internal/domain"
	"gorm.io/gorm" // GORM ORM library
)

// gormBoatRepository is the MySQL-backed BoatRepository.
type gormBoatRepository struct {
	db *gorm.DB
}

// NewGormBoatRepository returns a BoatRepository backed by the given GORM handle.
func NewGormBoatRepository(db *gorm.DB) BoatRepository {
	return &gormBoatRepository{db: db}
}

func (r *gormBoatRepository) Create(ctx context.Context, boat *domain.Boat) error {
	return r.db.WithContext(ctx).Create(boat).Error
}

func (r *gormBoatRepository) Save(ctx context.Context, boat *domain.Boat) error {
	return r.db.WithContext(ctx).Save(boat).Error
}

func (r *gormBoatRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Boat, error) {
	var boats []domain.Boat
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&boats).Error; err != nil {
		return nil, err
	}
	return boats, nil
}

func (r *gormBoatRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Boat, error) {
	var boat domain.Boat
	// Single scoped query: id and owner are matched together so a boat owned
	// by someone else is indistinguishable from a missing one
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&boat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &boat, nil
}

func (r *gormBoatRepository) Delete(ctx context.Context, boat *domain.Boat) error {
	return r.db.WithContext(ctx).Delete(boat).Error
}
