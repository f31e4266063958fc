package dao

import (
	"Backoffice/models"

	"gorm.io/gorm"
)

// AutoMigrate 同步表结构, sales_orders 由订单系统维护, 这里只保证测试环境可用
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.SalesOrder{},
		&models.Permission{},
		&models.Role{},
		&models.UserRole{},
		&models.RolePermission{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Wishlist{},
		&models.AuditLog{},
	)
}
