package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"klevant/internal/domain/catalog"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper *mappers.CatalogMapper
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ProductToModel(p)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ProductToModel(p)
	result := conn.Model(&models.ProductModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":        model.Name,
		"image_url":   model.ImageURL,
		"price":       model.Price,
		"description": model.Description,
		"category_id": model.CategoryID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.ProductModel
	if err := conn.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, err
	}
	return r.mapper.ProductToDomain(&model), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var productModels []models.ProductModel
	if err := conn.Order("name ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]*catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = r.mapper.ProductToDomain(&productModels[i])
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var count int64
	err := conn.Model(&models.ProductModel{}).Count(&count).Error
	return count, err
}

type CategoryRepository struct {
	db     *gorm.DB
	mapper *mappers.CatalogMapper
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.CategoryToModel(c)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	c.ID = model.ID
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.CategoryModel
	if err := conn.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, err
	}
	return r.mapper.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var categoryModels []models.CategoryModel
	if err := conn.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*catalog.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = r.mapper.CategoryToDomain(&categoryModels[i])
	}
	return categories, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var count int64
	err := conn.Model(&models.CategoryModel{}).Count(&count).Error
	return count, err
}
