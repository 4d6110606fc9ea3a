package main

import (
	"context"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/vtuhub/vtugateway/internal/api"
	v1 "github.com/vtuhub/vtugateway/internal/api/v1"
	authmw "github.com/vtuhub/vtugateway/internal/api/v1/middleware"
	"github.com/vtuhub/vtugateway/internal/api/validator"
	"github.com/vtuhub/vtugateway/internal/config"
	errmw "github.com/vtuhub/vtugateway/internal/error"
	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/internal/repository"
	"github.com/vtuhub/vtugateway/internal/service"
	"github.com/vtuhub/vtugateway/pkg/cache"
	"github.com/vtuhub/vtugateway/pkg/httpclient"
	"github.com/vtuhub/vtugateway/pkg/mysql"
	"github.com/vtuhub/vtugateway/pkg/vtuprovider"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,

			NewConnectionDB,
			NewCache,
			NewFiberApp,
			NewValidator,
			NewProvider,

			repository.NewTransactionManager,
			repository.NewWalletRepository,
			repository.NewWalletEntryRepository,
			repository.NewTransactionRepository,
			repository.NewRefundRepository,
			repository.NewProductRepository,

			NewProviderService,
			service.NewWalletService,
			service.NewTransactionService,
			service.NewPurchaseWorkflowService,
			NewCatalogService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	api.SetupRoutes(app, handler, authmw.RequireAuth(cfg.Auth.JWTSecret, logger))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			logger.Info("API server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: errmw.ErrorHandler()})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewCache(cfg *config.Config, logger *zap.Logger) (cache.Cache, error) {
	client, err := cache.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisCache(client), nil
}

func NewValidator() validator.IXValidator {
	return validator.NewXValidator(validatorv10.New())
}

func NewProvider(cfg *config.Config) vtuprovider.Provider {
	if cfg.Provider.Mode == vtuprovider.ModeHTTP {
		client := httpclient.NewHTTPClient(cfg.Provider.Timeout)
		return vtuprovider.NewHTTPProvider(cfg.Provider, client)
	}

	return vtuprovider.NewSimulator(cfg.Provider)
}

func NewProviderService(provider vtuprovider.Provider, cfg *config.Config, logger *zap.Logger,
	m *metrics.Metrics) service.ProviderService {
	return service.NewProviderService(provider, cfg.Provider, logger, m)
}

func NewCatalogService(products repository.ProductRepository, c cache.Cache, cfg *config.Config,
	logger *zap.Logger, m *metrics.Metrics) service.CatalogService {
	return service.NewCatalogService(products, c, cfg.Redis.TTL, logger, m)
}
