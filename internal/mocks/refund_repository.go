package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/model"
)

type RefundRepository struct {
	mock.Mock
}

func (m *RefundRepository) Create(ctx context.Context, refund *model.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *RefundRepository) GetByID(id int64) (*model.Refund, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Refund), args.Error(1)
}

func (m *RefundRepository) Update(ctx context.Context, refund *model.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *RefundRepository) FindUnpublishedPending(limit int) ([]model.Refund, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Refund), args.Error(1)
}
