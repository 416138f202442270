package repository

import (
	"context"

	"gorm.io/gorm"

	"hizmetpinari/internal/model"
)

// ProviderRepository defines provider profile persistence operations.
type ProviderRepository interface {
	Create(ctx context.Context, provider *model.Provider) error
	FindByID(ctx context.Context, id uint) (*model.Provider, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Provider, error)
}

type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a new provider repository.
func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

// Create creates a new provider profile.
func (r *providerRepository) Create(ctx context.Context, provider *model.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

// FindByID finds a provider profile by ID.
func (r *providerRepository) FindByID(ctx context.Context, id uint) (*model.Provider, error) {
	var provider model.Provider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// FindByUserID finds the provider profile belonging to a user.
func (r *providerRepository) FindByUserID(ctx context.Context, userID uint) (*model.Provider, error) {
	var provider model.Provider
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}
