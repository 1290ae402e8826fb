package repository

import (
	"context"
	"pos_terminal/internal/models"

	"gorm.io/gorm"
)

type ItemFilter struct {
	CategoryID    *uint
	SubcategoryID *uint
}

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSubcategories(ctx context.Context, categoryID uint) ([]models.Subcategory, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]models.CatalogItem, error)
	GetItem(ctx context.Context, id uint) (*models.CatalogItem, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) ListSubcategories(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&subcategories).Error
	return subcategories, err
}

func (r *catalogRepository) itemQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("items AS i").
		Select("i.id, i.category_id, c.name AS category_name, i.subcategory_id, s.name AS subcategory_name, i.name").
		Joins("LEFT JOIN categories c ON c.id = i.category_id").
		Joins("LEFT JOIN subcategories s ON s.id = i.subcategory_id")
}

func (r *catalogRepository) ListItems(ctx context.Context, filter ItemFilter) ([]models.CatalogItem, error) {
	query := r.itemQuery(ctx)
	if filter.CategoryID != nil {
		query = query.Where("i.category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("i.subcategory_id = ?", *filter.SubcategoryID)
	}

	var items []models.CatalogItem
	err := query.Order("i.id").Scan(&items).Error
	return items, err
}

func (r *catalogRepository) GetItem(ctx context.Context, id uint) (*models.CatalogItem, error) {
	var item models.CatalogItem
	result := r.itemQuery(ctx).Where("i.id = ?", id).Limit(1).Scan(&item)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &item, nil
}
