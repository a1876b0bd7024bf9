//go:build wireinject
// +build wireinject

package main

import (
	"Civix/config"
	"Civix/dao"
	"Civix/dao/cache"
	"Civix/handler"
	"Civix/pkg/client"
	"Civix/pkg/database"
	"Civix/pkg/rocketmq"
	"Civix/pkg/server"
	"Civix/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		config.ProvideModerationConfig,
		rocketmq.InitProducer,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Bind(new(service.UnreadCache), new(*cache.UnreadStorage)),

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Office), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.Stats), "*"),
		wire.Struct(new(handler.Moderation), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
