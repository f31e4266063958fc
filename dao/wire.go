package dao

import (
	"Backoffice/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCustomer,
	NewSalesOrder,
	NewPermission,
	NewRole,
	NewProduct,
	NewProductVariant,
	NewWishlist,
	NewAuditLog,
	cache.NewPermissionCache,
)
