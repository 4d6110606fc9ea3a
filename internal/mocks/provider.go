package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/pkg/vtuprovider"
)

type Provider struct {
	mock.Mock
}

func (p *Provider) Purchase(ctx context.Context, req vtuprovider.Request) (vtuprovider.Response, error) {
	args := p.Called(ctx, req)
	return args.Get(0).(vtuprovider.Response), args.Error(1)
}

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) PurchaseWithRetry(ctx context.Context, req vtuprovider.Request) (vtuprovider.Response, error) {
	args := p.Called(ctx, req)
	return args.Get(0).(vtuprovider.Response), args.Error(1)
}
