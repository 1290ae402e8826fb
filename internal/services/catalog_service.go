package services

import (
	"context"
	"errors"

	"pos_terminal/internal/models"
	"pos_terminal/internal/repository"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSubcategories(ctx context.Context, categoryID uint) ([]models.Subcategory, error)
	ListItems(ctx context.Context, filter repository.ItemFilter) ([]models.CatalogItem, error)
	GetItem(ctx context.Context, id uint) (*models.CatalogItem, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, err
}

func (s *catalogService) ListSubcategories(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	subcategories, err := s.catalogRepo.ListSubcategories(ctx, categoryID)
	if subcategories == nil {
		subcategories = []models.Subcategory{}
	}
	return subcategories, err
}

func (s *catalogService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]models.CatalogItem, error) {
	items, err := s.catalogRepo.ListItems(ctx, filter)
	if items == nil {
		items = []models.CatalogItem{}
	}
	return items, err
}

func (s *catalogService) GetItem(ctx context.Context, id uint) (*models.CatalogItem, error) {
	item, err := s.catalogRepo.GetItem(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}
