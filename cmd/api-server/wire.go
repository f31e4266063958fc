//go:build wireinject
// +build wireinject

package main

import (
	"Backoffice/config"
	"Backoffice/handler"
	"Backoffice/pkg/client"
	"Backoffice/pkg/database"
	"Backoffice/pkg/server"
	"Backoffice/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideCacheConfig,
		server.NewGinEngine,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.Customer), "*"),
		wire.Struct(new(handler.Permission), "*"),
		wire.Struct(new(handler.Wishlist), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		service.ProviderSet,
	)
	return nil, nil, nil
}

func InitPermissionService(cfg *config.Config) (service.IPermissionService, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideCacheConfig,
		service.ProviderSet,
	)
	return nil, nil
}
