//go:build wireinject
// +build wireinject

package di

import (
	"stay/config"
	"stay/infras/jwt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/infras/redis"
	healthHandler "stay/internal/handlers/health"
	hotelHandler "stay/internal/handlers/hotel"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"

	enrollmentRepository "stay/internal/domains/enrollment/repository"
	hotelRepository "stay/internal/domains/hotel/repository"
	hotelService "stay/internal/domains/hotel/service"
	ticketRepository "stay/internal/domains/ticket/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	enrollmentRepository.New,
	ticketRepository.New,
	hotelRepository.New,
	hotelService.New,
)

var domains = wire.NewSet(
	hotelDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	hotelHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
