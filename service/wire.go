package service

import (
	"Backoffice/config"
	"Backoffice/dao"
	"Backoffice/dao/cache"
	"Backoffice/pkg/clock"
	"Backoffice/pkg/rocketmq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	dao.ProviderSet,
	config.ProvideRocketMQConfig,
	rocketmq.InitProducer,
	clock.New,

	wire.Bind(new(CustomerRepository), new(*dao.Customer)),
	wire.Bind(new(SalesOrderRepository), new(*dao.SalesOrder)),
	wire.Bind(new(PermissionRepository), new(*dao.Permission)),
	wire.Bind(new(RoleRepository), new(*dao.Role)),
	wire.Bind(new(PermissionCatalogCache), new(*cache.PermissionCache)),
	wire.Bind(new(ProductRepository), new(*dao.Product)),
	wire.Bind(new(ProductVariantRepository), new(*dao.ProductVariant)),
	wire.Bind(new(WishlistRepository), new(*dao.Wishlist)),
	wire.Bind(new(AuditLogRepository), new(*dao.AuditLog)),
	wire.Bind(new(EventPublisher), new(*rocketmq.Producer)),

	wire.Struct(new(AuditService), "*"),
	wire.Bind(new(IAuditService), new(*AuditService)),

	wire.Struct(new(CustomerService), "*"),
	wire.Bind(new(ICustomerService), new(*CustomerService)),

	wire.Struct(new(PermissionService), "*"),
	wire.Bind(new(IPermissionService), new(*PermissionService)),

	wire.Struct(new(WishlistService), "*"),
	wire.Bind(new(IWishlistService), new(*WishlistService)),
)
