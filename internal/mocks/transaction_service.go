package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/service"
)

type TransactionService struct {
	mock.Mock
}

func (m *TransactionService) Create(ctx context.Context, cmd service.CreateTransactionCommand) (model.Transaction, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) MarkCompleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TransactionService) MarkFailed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TransactionService) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TransactionService) GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*model.Transaction, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionService) List(ctx context.Context, cmd service.ListTransactionsCommand) (service.TransactionListResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.TransactionListResult), args.Error(1)
}
