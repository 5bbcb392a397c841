package order

import "context"

type Repository interface {
	Save(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error)
}

type CartRepository interface {
	// GetOrCreate returns the customer's cart, creating it on first use.
	GetOrCreate(ctx context.Context, customerID uint) (*Cart, error)
	// UpsertItem inserts the item or, when the product is already in the
	// cart, adds to its quantity.
	UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID uint) error
	Clear(ctx context.Context, cartID uint) error
}
