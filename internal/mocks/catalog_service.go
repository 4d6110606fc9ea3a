package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/model"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) DataPlans(ctx context.Context, network model.NetworkProvider) ([]model.DataPlan, error) {
	args := m.Called(ctx, network)
	return args.Get(0).([]model.DataPlan), args.Error(1)
}

func (m *CatalogService) AirtimeProducts(ctx context.Context) ([]model.AirtimeProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.AirtimeProduct), args.Error(1)
}

func (m *CatalogService) CablePackages(ctx context.Context) ([]model.CablePackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.CablePackage), args.Error(1)
}

func (m *CatalogService) Discos(ctx context.Context) ([]model.Disco, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Disco), args.Error(1)
}
