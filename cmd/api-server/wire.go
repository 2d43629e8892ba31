//go:build wireinject
// +build wireinject

package main

import (
	"BrainRotBGone/config"
	"BrainRotBGone/dao"
	"BrainRotBGone/handler"
	"BrainRotBGone/pkg/client"
	"BrainRotBGone/pkg/database"
	"BrainRotBGone/pkg/server"
	"BrainRotBGone/service"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		config.ProvideDatabaseConfig,
		config.ProvideRedisConfig,
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	wire.Build(
		config.ProvideDatabaseConfig,
		database.NewDB,
	)
	return nil, nil
}
