package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/service"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, exchange string, routingKey string, body []byte) error {
	args := m.Called(ctx, exchange, routingKey, body)
	return args.Error(0)
}

type RefundQueueService struct {
	mock.Mock
}

func (m *RefundQueueService) FindRefundsToQueue(ctx context.Context, limit int) ([]service.ProcessRefundCommand, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ProcessRefundCommand), args.Error(1)
}

func (m *RefundQueueService) MarkRefundAsQueued(ctx context.Context, refundID int64) error {
	args := m.Called(ctx, refundID)
	return args.Error(0)
}

type RefundService struct {
	mock.Mock
}

func (m *RefundService) Process(ctx context.Context, cmd service.ProcessRefundCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
