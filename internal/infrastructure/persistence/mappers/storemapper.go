package mappers

import (
	"klevant/internal/domain/catalog"
	"klevant/internal/domain/order"
	"klevant/internal/infrastructure/persistence/models"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ProductToModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *CatalogMapper) ProductToDomain(model *models.ProductModel) *catalog.Product {
	return &catalog.Product{
		ID:          model.ID,
		Name:        model.Name,
		ImageURL:    model.ImageURL,
		Price:       model.Price,
		Description: model.Description,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *CatalogMapper) CategoryToModel(c *catalog.Category) *models.CategoryModel {
	return &models.CategoryModel{ID: c.ID, Name: c.Name}
}

func (m *CatalogMapper) CategoryToDomain(model *models.CategoryModel) *catalog.Category {
	return &catalog.Category{ID: model.ID, Name: model.Name}
}

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToModel(o *order.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = models.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return &models.OrderModel{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Status:       o.Status.String(),
		Items:        items,
		DeliveryDate: o.DeliveryDate,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func (m *OrderMapper) ToDomain(model *models.OrderModel) *order.Order {
	items := make([]order.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return &order.Order{
		ID:           model.ID,
		CustomerID:   model.CustomerID,
		Status:       order.Status(model.Status),
		Items:        items,
		DeliveryDate: model.DeliveryDate,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *OrderMapper) CartToDomain(model *models.CartModel) *order.Cart {
	items := make([]order.CartItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.CartItem{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
		}
	}
	return &order.Cart{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		Items:      items,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
