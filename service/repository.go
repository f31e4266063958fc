package service

import (
	"Backoffice/models"
	"context"
)

// 查询不到记录时返回 gorm.ErrRecordNotFound, 与 dao 包保持一致

type CustomerRepository interface {
	FindActiveByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindActiveById(ctx context.Context, id uint64) (*models.Customer, error)
	FindById(ctx context.Context, id uint64) (*models.Customer, error)
	ListActive(ctx context.Context) ([]*models.Customer, error)
	IsPhoneTaken(ctx context.Context, phone string, excludeID uint64) (bool, error)
	Create(ctx context.Context, customer *models.Customer) error
	Save(ctx context.Context, customer *models.Customer) error
}

type SalesOrderRepository interface {
	FindByPhone(ctx context.Context, phone string, limit int) ([]*models.SalesOrder, error)
}

type PermissionRepository interface {
	ListOrdered(ctx context.Context) ([]*models.Permission, error)
	FindById(ctx context.Context, id uint64) (*models.Permission, error)
	ListByUser(ctx context.Context, userID uint64) ([]*models.Permission, error)
	FirstOrCreate(ctx context.Context, perm *models.Permission) error
}

type RoleRepository interface {
	RoleNamesByUser(ctx context.Context, userID uint64) ([]string, error)
	FirstOrCreateByName(ctx context.Context, name, description string) (*models.Role, error)
}

type PermissionCatalogCache interface {
	GetCatalog(ctx context.Context) ([]*models.Permission, bool)
	SetCatalog(ctx context.Context, items []*models.Permission)
	Invalidate(ctx context.Context)
}

type ProductRepository interface {
	FindById(ctx context.Context, id uint64) (*models.Product, error)
	FindByIds(ctx context.Context, ids []uint64) ([]*models.Product, error)
}

type ProductVariantRepository interface {
	FindByIdAndProduct(ctx context.Context, id, productID uint64) (*models.ProductVariant, error)
	FindByIds(ctx context.Context, ids []uint64) ([]*models.ProductVariant, error)
}

type WishlistRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]*models.Wishlist, error)
	Exists(ctx context.Context, userID, productID uint64, variantID *uint64) (bool, error)
	FindByIdAndUser(ctx context.Context, id, userID uint64) (*models.Wishlist, error)
	Create(ctx context.Context, item *models.Wishlist) error
	Delete(ctx context.Context, item *models.Wishlist) error
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

type EventPublisher interface {
	SendMsg(ctx context.Context, topic string, key string, body []byte) error
}
