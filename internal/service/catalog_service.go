package service

import (
	"context"
	"fmt"

	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
)

// CatalogService exposes the read-only service catalog.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListDistricts(ctx context.Context) ([]model.District, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) ListDistricts(ctx context.Context) ([]model.District, error) {
	districts, err := s.catalogRepo.ListDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	return districts, nil
}
