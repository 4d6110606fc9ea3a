package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/repository"
	"github.com/vtuhub/vtugateway/pkg/cache"
	"go.uber.org/zap"
)

type CatalogService interface {
	DataPlans(ctx context.Context, network model.NetworkProvider) ([]model.DataPlan, error)
	AirtimeProducts(ctx context.Context) ([]model.AirtimeProduct, error)
	CablePackages(ctx context.Context) ([]model.CablePackage, error)
	Discos(ctx context.Context) ([]model.Disco, error)
}

// catalogService serves read-only reference data through a redis
// read-through cache. The cache is an optimization only; lookup failures
// fall back to the database.
type catalogService struct {
	products repository.ProductRepository
	cache    cache.Cache
	ttl      time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewCatalogService(products repository.ProductRepository, c cache.Cache, ttl time.Duration,
	logger *zap.Logger, metrics *metrics.Metrics) CatalogService {
	return &catalogService{products: products, cache: c, ttl: ttl, logger: logger, metrics: metrics}
}

func (s *catalogService) DataPlans(ctx context.Context, network model.NetworkProvider) ([]model.DataPlan, error) {
	key := fmt.Sprintf("catalog:data_plans:%s", network)

	var plans []model.DataPlan
	if s.cacheGet(ctx, "data_plans", key, &plans) {
		return plans, nil
	}

	plans, err := s.products.DataPlans(ctx, network)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	s.cacheSet(ctx, key, plans)

	return plans, nil
}

func (s *catalogService) AirtimeProducts(ctx context.Context) ([]model.AirtimeProduct, error) {
	key := "catalog:airtime_products"

	var products []model.AirtimeProduct
	if s.cacheGet(ctx, "airtime_products", key, &products) {
		return products, nil
	}

	products, err := s.products.AirtimeProducts(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	s.cacheSet(ctx, key, products)

	return products, nil
}

func (s *catalogService) CablePackages(ctx context.Context) ([]model.CablePackage, error) {
	key := "catalog:cable_packages"

	var packages []model.CablePackage
	if s.cacheGet(ctx, "cable_packages", key, &packages) {
		return packages, nil
	}

	packages, err := s.products.CablePackages(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	s.cacheSet(ctx, key, packages)

	return packages, nil
}

func (s *catalogService) Discos(ctx context.Context) ([]model.Disco, error) {
	key := "catalog:discos"

	var discos []model.Disco
	if s.cacheGet(ctx, "discos", key, &discos) {
		return discos, nil
	}

	discos, err := s.products.Discos(ctx)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	s.cacheSet(ctx, key, discos)

	return discos, nil
}

func (s *catalogService) cacheGet(ctx context.Context, label, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("Catalog cache lookup failed", zap.String("key", key), zap.Error(err))
		s.metrics.RecordCacheLookup(label, "error")
		return false
	}

	if hit {
		s.metrics.RecordCacheLookup(label, "hit")
		return true
	}

	s.metrics.RecordCacheLookup(label, "miss")
	return false
}

func (s *catalogService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("Catalog cache store failed", zap.String("key", key), zap.Error(err))
	}
}
