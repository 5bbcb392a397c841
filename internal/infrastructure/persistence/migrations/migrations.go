// Package migrations applies the database schema.
package migrations

import (
	"gorm.io/gorm"

	"klevant/internal/infrastructure/persistence/models"
)

// Run migrates all tables. Invoked by the migrate CLI command and on server
// start in sqlite mode.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.TicketModel{},
		&models.QuotationModel{},
		&models.QuotationItemModel{},
		&models.StatusHistoryModel{},
		&models.AdditionalProductModel{},
		&models.NotificationModel{},
		&models.OutwardAssignmentModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.CartModel{},
		&models.CartItemModel{},
	)
}
