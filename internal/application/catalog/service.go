// Package catalog implements the storefront product and category CRUD. The
// records carry no workflow, so a single service replaces per-operation use
// cases.
package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"klevant/internal/domain/catalog"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type ProductInput struct {
	Name        string
	ImageURL    string
	Description string
	Price       decimal.Decimal
	CategoryID  uint
}

type ProductDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Price       string    `json:"price"`
	Description string    `json:"description,omitempty"`
	CategoryID  uint      `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Service struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	p, err := catalog.NewProduct(input.Name, input.ImageURL, input.Description, input.Price, input.CategoryID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.productRepo.Save(ctx, p); err != nil {
		s.logger.Errorw("failed to create product", "error", err)
		return nil, errors.NewInternalError("failed to create product")
	}

	return productDTO(p), nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uint, input ProductInput) (*ProductDTO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	updated, err := catalog.NewProduct(input.Name, input.ImageURL, input.Description, input.Price, input.CategoryID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	updated.ID = p.ID
	updated.CreatedAt = p.CreatedAt

	if err := s.productRepo.Update(ctx, updated); err != nil {
		s.logger.Errorw("failed to update product", "product_id", id, "error", err)
		return nil, errors.NewInternalError("failed to update product")
	}

	return productDTO(updated), nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete product", "product_id", id, "error", err)
		return errors.NewInternalError("failed to delete product")
	}
	return nil
}

func (s *Service) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productDTO(p), nil
}

func (s *Service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list products", "error", err)
		return nil, errors.NewInternalError("failed to list products")
	}
	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = *productDTO(p)
	}
	return dtos, nil
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*CategoryDTO, error) {
	c, err := catalog.NewCategory(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.categoryRepo.Save(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("category already exists")
		}
		s.logger.Errorw("failed to create category", "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name}, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete category", "category_id", id, "error", err)
		return errors.NewInternalError("failed to delete category")
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = CategoryDTO{ID: c.ID, Name: c.Name}
	}
	return dtos, nil
}

func productDTO(p *catalog.Product) *ProductDTO {
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}
