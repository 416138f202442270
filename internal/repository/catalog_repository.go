package repository

import (
	"context"

	"gorm.io/gorm"

	"hizmetpinari/internal/model"
)

// CatalogRepository defines read access to the service catalog.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListDistricts(ctx context.Context) ([]model.District, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListCategories lists active categories with their services.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).
		Preload("Services", "is_active = ?", true).
		Where("is_active = ?", true).
		Order("name").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListServices lists active services.
func (r *catalogRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ListDistricts lists all districts.
func (r *catalogRepository) ListDistricts(ctx context.Context) ([]model.District, error) {
	var districts []model.District
	if err := r.db.WithContext(ctx).Order("city_name, name").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}
