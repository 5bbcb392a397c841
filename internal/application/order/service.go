// Package order implements the storefront cart and order operations.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"klevant/internal/domain/catalog"
	"klevant/internal/domain/order"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type CartItemDTO struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartDTO struct {
	ID    uint          `json:"id"`
	Items []CartItemDTO `json:"items"`
	Total string        `json:"total"`
}

type OrderItemDTO struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

type OrderDTO struct {
	ID           uint           `json:"id"`
	CustomerID   uint           `json:"customer_id"`
	Status       string         `json:"status"`
	Items        []OrderItemDTO `json:"items"`
	TotalAmount  string         `json:"total_amount"`
	DeliveryDate *time.Time     `json:"delivery_date,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type Service struct {
	orderRepo   order.Repository
	cartRepo    order.CartRepository
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewService(
	orderRepo order.Repository,
	cartRepo order.CartRepository,
	productRepo catalog.ProductRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *Service) GetCart(ctx context.Context, customerID uint) (*CartDTO, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, customerID)
	if err != nil {
		s.logger.Errorw("failed to load cart", "customer_id", customerID, "error", err)
		return nil, errors.NewInternalError("failed to load cart")
	}
	return s.cartDTO(ctx, cart)
}

// AddToCart upserts the product into the customer's cart; an existing line
// accumulates quantity.
func (s *Service) AddToCart(ctx context.Context, customerID, productID uint, quantity int) (*CartDTO, error) {
	if quantity < 1 {
		return nil, errors.NewValidationError("quantity must be at least 1")
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, customerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load cart")
	}
	if err := s.cartRepo.UpsertItem(ctx, cart.ID, productID, quantity); err != nil {
		s.logger.Errorw("failed to add to cart", "customer_id", customerID, "product_id", productID, "error", err)
		return nil, errors.NewInternalError("failed to add to cart")
	}

	cart, err = s.cartRepo.GetOrCreate(ctx, customerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load cart")
	}
	return s.cartDTO(ctx, cart)
}

func (s *Service) RemoveFromCart(ctx context.Context, customerID, productID uint) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, customerID)
	if err != nil {
		return errors.NewInternalError("failed to load cart")
	}
	if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		s.logger.Errorw("failed to remove cart item", "customer_id", customerID, "product_id", productID, "error", err)
		return errors.NewInternalError("failed to remove cart item")
	}
	return nil
}

// PlaceOrder turns the cart into an order, snapshotting current product
// prices, then clears the cart.
func (s *Service) PlaceOrder(ctx context.Context, customerID uint) (*OrderDTO, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, customerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load cart")
	}
	if len(cart.Items) == 0 {
		return nil, errors.NewBadRequestError("cart is empty")
	}

	items := make([]order.OrderItem, 0, len(cart.Items))
	for _, ci := range cart.Items {
		p, err := s.productRepo.GetByID(ctx, ci.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, order.OrderItem{
			ProductID: p.ID,
			Quantity:  ci.Quantity,
			Price:     p.Price,
		})
	}

	o, err := order.NewOrder(customerID, items)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.logger.Errorw("failed to place order", "customer_id", customerID, "error", err)
		return nil, errors.NewInternalError("failed to place order")
	}

	if err := s.cartRepo.Clear(ctx, cart.ID); err != nil {
		s.logger.Warnw("failed to clear cart after order", "cart_id", cart.ID, "error", err)
	}

	s.logger.Infow("order placed", "order_id", o.ID, "customer_id", customerID)
	return orderDTO(o), nil
}

func (s *Service) ListOrders(ctx context.Context, customerID uint) ([]OrderDTO, error) {
	var (
		orders []*order.Order
		err    error
	)
	if customerID != 0 {
		orders, err = s.orderRepo.ListByCustomer(ctx, customerID)
	} else {
		orders, err = s.orderRepo.List(ctx)
	}
	if err != nil {
		s.logger.Errorw("failed to list orders", "error", err)
		return nil, errors.NewInternalError("failed to list orders")
	}

	dtos := make([]OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = *orderDTO(o)
	}
	return dtos, nil
}

// CancelOrder rejects cancellation of delivered orders.
func (s *Service) CancelOrder(ctx context.Context, orderID, customerID uint) (*OrderDTO, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if customerID != 0 && o.CustomerID != customerID {
		return nil, errors.NewForbiddenError("order belongs to another customer")
	}

	if err := o.Cancel(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		s.logger.Errorw("failed to cancel order", "order_id", orderID, "error", err)
		return nil, errors.NewInternalError("failed to cancel order")
	}

	s.logger.Infow("order cancelled", "order_id", o.ID)
	return orderDTO(o), nil
}

func (s *Service) cartDTO(ctx context.Context, cart *order.Cart) (*CartDTO, error) {
	items := make([]CartItemDTO, 0, len(cart.Items))
	total := decimal.Zero
	for _, ci := range cart.Items {
		p, err := s.productRepo.GetByID(ctx, ci.ProductID)
		if err != nil {
			return nil, err
		}
		line := order.OrderItem{ProductID: p.ID, Quantity: ci.Quantity, Price: p.Price}
		items = append(items, CartItemDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price.StringFixed(2),
			Quantity:  ci.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
		total = total.Add(line.LineTotal())
	}
	return &CartDTO{
		ID:    cart.ID,
		Items: items,
		Total: total.StringFixed(2),
	}, nil
}

func orderDTO(o *order.Order) *OrderDTO {
	items := make([]OrderItemDTO, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
		}
	}
	return &OrderDTO{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Status:       o.Status.String(),
		Items:        items,
		TotalAmount:  o.TotalAmount().StringFixed(2),
		DeliveryDate: o.DeliveryDate,
		CreatedAt:    o.CreatedAt,
	}
}
