package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/internal/mocks"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/repository"
	"github.com/vtuhub/vtugateway/internal/service"
	"go.uber.org/zap"
)

var (
	testMetrics     *metrics.Metrics
	testMetricsOnce sync.Once
)

func newTestMetrics() *metrics.Metrics {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewMetrics()
	})
	return testMetrics
}

func TestWallet_GetBalance(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Returns balance for existing wallet", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		svc := service.NewWalletService(walletRepo, &mocks.WalletEntryRepository{}, &mocks.TxManager{}, logger, newTestMetrics())

		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 1500}, nil)

		balance, err := svc.GetBalance(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), balance)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Provisions empty wallet on first read", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		svc := service.NewWalletService(walletRepo, &mocks.WalletEntryRepository{}, &mocks.TxManager{}, logger, newTestMetrics())

		walletRepo.On("FindByUserID", mock.Anything, "new-user").
			Return(model.WalletAccount{}, repository.ErrWalletNotFound)
		walletRepo.On("Create", mock.Anything, mock.MatchedBy(func(account *model.WalletAccount) bool {
			return account.UserID == "new-user" && account.Balance == 0
		})).Return(nil)

		balance, err := svc.GetBalance(context.Background(), "new-user")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), balance)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Lost provisioning race re-reads the winner's row", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		svc := service.NewWalletService(walletRepo, &mocks.WalletEntryRepository{}, &mocks.TxManager{}, logger, newTestMetrics())

		walletRepo.On("FindByUserID", mock.Anything, "racer").
			Return(model.WalletAccount{}, repository.ErrWalletNotFound).Once()
		walletRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrWalletExists)
		walletRepo.On("FindByUserID", mock.Anything, "racer").
			Return(model.WalletAccount{UserID: "racer", Balance: 200}, nil).Once()

		balance, err := svc.GetBalance(context.Background(), "racer")

		assert.NoError(t, err)
		assert.Equal(t, int64(200), balance)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Read failure propagates instead of masking as zero", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		svc := service.NewWalletService(walletRepo, &mocks.WalletEntryRepository{}, &mocks.TxManager{}, logger, newTestMetrics())

		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{}, errors.New("connection refused"))

		_, err := svc.GetBalance(context.Background(), "user-1")

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInternalError, serviceErr.Code)
	})
}

func TestWallet_Debit(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.DebitCommand{UserID: "user-1", Amount: 500, IdempotencyKey: "debit-key-1"}

	t.Run("Debits balance and records ledger entry", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.WalletEntry) bool {
			return entry.EntryType == model.EntryTypeDebit &&
				entry.Amount == cmd.Amount &&
				entry.IdempotencyKey == cmd.IdempotencyKey
		})).Return(nil)
		walletRepo.On("Debit", mock.Anything, "user-1", int64(500)).Return(nil)
		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 500}, nil)

		result, err := svc.Debit(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(500), result.Balance)
		walletRepo.AssertExpectations(t)
		entryRepo.AssertExpectations(t)
	})

	t.Run("Insufficient balance leaves wallet untouched", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		walletRepo.On("Debit", mock.Anything, "user-1", int64(500)).
			Return(repository.ErrInsufficientBalance)

		_, err := svc.Debit(context.Background(), cmd)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInsufficientBalance, serviceErr.Code)
		walletRepo.AssertNumberOfCalls(t, "Debit", 1)
	})

	t.Run("Replayed idempotency key returns balance without second debit", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEntryExists)
		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 500}, nil)

		result, err := svc.Debit(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(500), result.Balance)
		walletRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing wallet reads as insufficient balance", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		walletRepo.On("Debit", mock.Anything, "user-1", int64(500)).
			Return(repository.ErrWalletNotFound)

		_, err := svc.Debit(context.Background(), cmd)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInsufficientBalance, serviceErr.Code)
	})
}

func TestWallet_Credit(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.CreditCommand{UserID: "user-1", Amount: 300, IdempotencyKey: "credit-key-1"}

	t.Run("Credits existing wallet", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.WalletEntry) bool {
			return entry.EntryType == model.EntryTypeCredit && entry.Amount == cmd.Amount
		})).Return(nil)
		walletRepo.On("Credit", mock.Anything, "user-1", int64(300)).Return(nil)
		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 800}, nil)

		result, err := svc.Credit(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(800), result.Balance)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Creates wallet when crediting a fresh user", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		walletRepo.On("Credit", mock.Anything, "user-1", int64(300)).
			Return(repository.ErrWalletNotFound)
		walletRepo.On("Create", mock.Anything, mock.MatchedBy(func(account *model.WalletAccount) bool {
			return account.UserID == "user-1" && account.Balance == 300
		})).Return(nil)

		result, err := svc.Credit(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(300), result.Balance)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Replayed idempotency key does not double credit", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		svc := service.NewWalletService(walletRepo, entryRepo, &mocks.TxManager{}, logger, newTestMetrics())

		entryRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEntryExists)
		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 800}, nil)

		result, err := svc.Credit(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(800), result.Balance)
		walletRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWallet_TopUp(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.TopUpCommand{UserID: "user-1", Amount: 1000, IdempotencyKey: "topup-key-1"}

	t.Run("Tops up inside a transaction", func(t *testing.T) {
		walletRepo := &mocks.WalletRepository{}
		entryRepo := &mocks.WalletEntryRepository{}
		txManager := &mocks.TxManager{}
		svc := service.NewWalletService(walletRepo, entryRepo, txManager, logger, newTestMetrics())

		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 0}, nil).Once()
		txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		entryRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		walletRepo.On("Credit", mock.Anything, "user-1", int64(1000)).Return(nil)
		walletRepo.On("FindByUserID", mock.Anything, "user-1").
			Return(model.WalletAccount{UserID: "user-1", Balance: 1000}, nil).Once()

		result, err := svc.TopUp(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), result.Balance)
		txManager.AssertExpectations(t)
	})
}
