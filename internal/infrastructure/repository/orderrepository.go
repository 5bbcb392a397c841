package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"klevant/internal/domain/order"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper *mappers.OrderMapper
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(o)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Model(&models.OrderModel{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"status":        o.Status.String(),
		"delivery_date": o.DeliveryDate,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order not found")
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.OrderModel
	if err := conn.Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, nil)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	return r.list(ctx, &customerID)
}

func (r *OrderRepository) list(ctx context.Context, customerID *uint) ([]*order.Order, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Preload("Items")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = r.mapper.ToDomain(&orderModels[i])
	}
	return orders, nil
}

type CartRepository struct {
	db     *gorm.DB
	mapper *mappers.OrderMapper
}

func NewCartRepository(database *gorm.DB) *CartRepository {
	return &CartRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *CartRepository) GetOrCreate(ctx context.Context, customerID uint) (*order.Cart, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.CartModel
	err := conn.Preload("Items").Where("customer_id = ?", customerID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		model = models.CartModel{CustomerID: customerID}
		if err := conn.Create(&model).Error; err != nil {
			return nil, err
		}
		return r.mapper.CartToDomain(&model), nil
	}
	if err != nil {
		return nil, err
	}
	return r.mapper.CartToDomain(&model), nil
}

// UpsertItem accumulates quantity on conflict with the (cart, product)
// unique index.
func (r *CartRepository) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error {
	conn := db.GetTxFromContext(ctx, r.db)
	item := models.CartItemModel{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	return conn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", quantity),
		}),
	}).Create(&item).Error
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	result := conn.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&models.CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("cart item not found")
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, cartID uint) error {
	conn := db.GetTxFromContext(ctx, r.db)
	return conn.Where("cart_id = ?", cartID).Delete(&models.CartItemModel{}).Error
}
