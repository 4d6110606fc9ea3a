package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/model"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) DataPlans(ctx context.Context, network model.NetworkProvider) ([]model.DataPlan, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DataPlan), args.Error(1)
}

func (m *ProductRepository) AirtimeProducts(ctx context.Context) ([]model.AirtimeProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AirtimeProduct), args.Error(1)
}

func (m *ProductRepository) CablePackages(ctx context.Context) ([]model.CablePackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CablePackage), args.Error(1)
}

func (m *ProductRepository) Discos(ctx context.Context) ([]model.Disco, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Disco), args.Error(1)
}
