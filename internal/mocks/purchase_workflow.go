package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/service"
)

type PurchaseWorkflowService struct {
	mock.Mock
}

func (m *PurchaseWorkflowService) Purchase(ctx context.Context, cmd service.PurchaseCommand) (service.PurchaseResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.PurchaseResult), args.Error(1)
}
