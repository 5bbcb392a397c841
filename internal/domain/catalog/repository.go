package catalog

import "context"

type ProductRepository interface {
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Count(ctx context.Context) (int64, error)
}
