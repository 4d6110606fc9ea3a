package service

import (
	"context"
	"errors"
	"time"

	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/repository"
	"go.uber.org/zap"
)

type WalletService interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	TopUp(ctx context.Context, cmd TopUpCommand) (WalletResult, error)
	Debit(ctx context.Context, cmd DebitCommand) (WalletResult, error)
	Credit(ctx context.Context, cmd CreditCommand) (WalletResult, error)
}

type walletService struct {
	walletRepo repository.WalletRepository
	entryRepo  repository.WalletEntryRepository
	txManager  repository.TxManager
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewWalletService(walletRepo repository.WalletRepository, entryRepo repository.WalletEntryRepository,
	txManager repository.TxManager, logger *zap.Logger, metrics *metrics.Metrics) WalletService {
	return &walletService{walletRepo: walletRepo, entryRepo: entryRepo, txManager: txManager,
		logger: logger, metrics: metrics}
}

// GetBalance provisions an empty wallet on first read so a fresh user always
// sees a zero balance rather than a missing account.
func (s *walletService) GetBalance(ctx context.Context, userID string) (int64, error) {
	start := time.Now()

	account, err := s.walletRepo.FindByUserID(ctx, userID)
	if err == nil {
		s.metrics.RecordDBQuery("select", "wallet_accounts", "success", time.Since(start))
		return account.Balance, nil
	}

	if !errors.Is(err, repository.ErrWalletNotFound) {
		s.logger.Error("Failed to read wallet balance",
			zap.String("userID", userID),
			zap.Error(err))
		s.metrics.RecordDBQuery("select", "wallet_accounts", "error", time.Since(start))
		return 0, NewServiceError(constants.ErrCodeInternalError, err)
	}

	account = model.WalletAccount{UserID: userID, Balance: 0, CreatedAt: time.Now(), UpdatedAt: time.Now()}

	err = s.walletRepo.Create(ctx, &account)
	if err == nil {
		s.logger.Info("Wallet auto-provisioned", zap.String("userID", userID))
		return 0, nil
	}

	if errors.Is(err, repository.ErrWalletExists) {
		// Lost the provisioning race; the other writer's row is authoritative.
		account, err = s.walletRepo.FindByUserID(ctx, userID)
		if err != nil {
			return 0, NewServiceError(constants.ErrCodeInternalError, err)
		}
		return account.Balance, nil
	}

	s.logger.Error("Failed to auto-provision wallet",
		zap.String("userID", userID),
		zap.Error(err))

	return 0, NewServiceError(constants.ErrCodeInternalError, err)
}

func (s *walletService) TopUp(ctx context.Context, cmd TopUpCommand) (WalletResult, error) {
	if _, err := s.GetBalance(ctx, cmd.UserID); err != nil {
		s.metrics.RecordTopUp("error")
		return WalletResult{}, err
	}

	var result WalletResult
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.Credit(ctx, CreditCommand(cmd))
		return err
	})

	if err != nil {
		s.metrics.RecordTopUp("error")
		return WalletResult{}, err
	}

	s.logger.Info("Wallet topped up",
		zap.String("userID", cmd.UserID),
		zap.Int64("amount", cmd.Amount),
		zap.Int64("balance", result.Balance))
	s.metrics.RecordTopUp("success")

	return result, nil
}

// Debit records a ledger entry and applies the balance change. Both writes
// share the caller's transaction context, so an aborted purchase rolls the
// entry back as well.
func (s *walletService) Debit(ctx context.Context, cmd DebitCommand) (WalletResult, error) {
	entry := model.WalletEntry{
		UserID:         cmd.UserID,
		EntryType:      model.EntryTypeDebit,
		Amount:         cmd.Amount,
		IdempotencyKey: cmd.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	if err := s.entryRepo.Create(ctx, &entry); err != nil {
		if errors.Is(err, repository.ErrEntryExists) {
			s.logger.Info("Idempotent debit replay, balance unchanged",
				zap.String("userID", cmd.UserID),
				zap.String("idempotencyKey", cmd.IdempotencyKey))
			return s.currentResult(ctx, cmd.UserID)
		}

		s.logger.Error("Failed to create debit ledger entry", zap.Error(err))
		return WalletResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	err := s.walletRepo.Debit(ctx, cmd.UserID, cmd.Amount)
	if err == nil {
		return s.currentResult(ctx, cmd.UserID)
	}

	if errors.Is(err, repository.ErrInsufficientBalance) {
		return WalletResult{}, NewServiceError(constants.ErrCodeInsufficientBalance, err)
	}

	if errors.Is(err, repository.ErrWalletNotFound) {
		// A never-provisioned wallet holds nothing to spend.
		return WalletResult{}, NewServiceError(constants.ErrCodeInsufficientBalance, err)
	}

	s.logger.Error("Failed to debit wallet",
		zap.String("userID", cmd.UserID),
		zap.Int64("amount", cmd.Amount),
		zap.Error(err))

	return WalletResult{}, NewServiceError(constants.ErrCodeInternalError, err)
}

func (s *walletService) Credit(ctx context.Context, cmd CreditCommand) (WalletResult, error) {
	entry := model.WalletEntry{
		UserID:         cmd.UserID,
		EntryType:      model.EntryTypeCredit,
		Amount:         cmd.Amount,
		IdempotencyKey: cmd.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	if err := s.entryRepo.Create(ctx, &entry); err != nil {
		if errors.Is(err, repository.ErrEntryExists) {
			s.logger.Info("Idempotent credit replay, balance unchanged",
				zap.String("userID", cmd.UserID),
				zap.String("idempotencyKey", cmd.IdempotencyKey))
			return s.currentResult(ctx, cmd.UserID)
		}

		s.logger.Error("Failed to create credit ledger entry", zap.Error(err))
		return WalletResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	err := s.walletRepo.Credit(ctx, cmd.UserID, cmd.Amount)
	if err == nil {
		return s.currentResult(ctx, cmd.UserID)
	}

	if errors.Is(err, repository.ErrWalletNotFound) {
		account := model.WalletAccount{UserID: cmd.UserID, Balance: cmd.Amount,
			CreatedAt: time.Now(), UpdatedAt: time.Now()}

		if createErr := s.walletRepo.Create(ctx, &account); createErr != nil {
			if errors.Is(createErr, repository.ErrWalletExists) {
				if retryErr := s.walletRepo.Credit(ctx, cmd.UserID, cmd.Amount); retryErr == nil {
					return s.currentResult(ctx, cmd.UserID)
				}
			}
			return WalletResult{}, NewServiceError(constants.ErrCodeInternalError, createErr)
		}

		return WalletResult{UserID: cmd.UserID, Balance: account.Balance}, nil
	}

	s.logger.Error("Failed to credit wallet",
		zap.String("userID", cmd.UserID),
		zap.Int64("amount", cmd.Amount),
		zap.Error(err))

	return WalletResult{}, NewServiceError(constants.ErrCodeInternalError, err)
}

func (s *walletService) currentResult(ctx context.Context, userID string) (WalletResult, error) {
	account, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return WalletResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return WalletResult{UserID: account.UserID, Balance: account.Balance}, nil
}
