package main

import (
	"context"

	"github.com/Behyna/otp-services/otpgateway/internal/api"
	v1 "github.com/Behyna/otp-services/otpgateway/internal/api/v1"
	"github.com/Behyna/otp-services/otpgateway/internal/cache"
	"github.com/Behyna/otp-services/otpgateway/internal/cache/redis"
	"github.com/Behyna/otp-services/otpgateway/internal/config"
	middleware "github.com/Behyna/otp-services/otpgateway/internal/error"
	"github.com/Behyna/otp-services/otpgateway/internal/repository"
	"github.com/Behyna/otp-services/otpgateway/internal/service"
	"github.com/Behyna/otp-services/otpgateway/pkg/httpclient"
	"github.com/Behyna/otp-services/otpgateway/pkg/mysql"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewConnectionDB,
			NewRedisClient,
			NewGatewayHTTPClient,
			NewFiberApp,

			repository.NewVerificationRepository,
			service.NewVerificationService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, redisClient *redis.Client,
	logger *zap.Logger, lc fx.Lifecycle,
) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := redisClient.Ping(ctx); err != nil {
				logger.Error("redis ping failed", zap.Error(err))
				return err
			}

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return redisClient.Close()
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewRedisClient(cfg *config.Config) (*redis.Client, cache.Cache) {
	client := redis.New(cfg.Redis)
	return client, client
}

func NewGatewayHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Gateway.Timeout)
}
