package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/model"
)

type WalletRepository struct {
	mock.Mock
}

func (m *WalletRepository) Create(ctx context.Context, account *model.WalletAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *WalletRepository) FindByUserID(ctx context.Context, userID string) (model.WalletAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.WalletAccount), args.Error(1)
}

func (m *WalletRepository) Debit(ctx context.Context, userID string, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *WalletRepository) Credit(ctx context.Context, userID string, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

type WalletEntryRepository struct {
	mock.Mock
}

func (m *WalletEntryRepository) Create(ctx context.Context, entry *model.WalletEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *WalletEntryRepository) GetByIdempotencyKey(ctx context.Context, entryType model.EntryType, idempotencyKey string) (*model.WalletEntry, error) {
	args := m.Called(ctx, entryType, idempotencyKey)
	return args.Get(0).(*model.WalletEntry), args.Error(1)
}
