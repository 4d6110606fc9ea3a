package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/service"
)

type WalletService struct {
	mock.Mock
}

func (m *WalletService) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *WalletService) TopUp(ctx context.Context, cmd service.TopUpCommand) (service.WalletResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.WalletResult), args.Error(1)
}

func (m *WalletService) Debit(ctx context.Context, cmd service.DebitCommand) (service.WalletResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.WalletResult), args.Error(1)
}

func (m *WalletService) Credit(ctx context.Context, cmd service.CreditCommand) (service.WalletResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.WalletResult), args.Error(1)
}
