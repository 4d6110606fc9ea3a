package service

import (
	"context"
	"errors"
	"time"

	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/repository"
	"github.com/vtuhub/vtugateway/pkg/vtuprovider"
	"go.uber.org/zap"
)

type PurchaseWorkflowService interface {
	Purchase(ctx context.Context, cmd PurchaseCommand) (PurchaseResult, error)
}

// purchaseWorkflowService runs the purchase pipeline: debit the wallet and
// create a pending transaction atomically, call the provider, then finalize
// the transaction. A failed fulfillment opens a refund on the outbox so the
// debit is compensated asynchronously.
type purchaseWorkflowService struct {
	wallets      WalletService
	transactions TransactionService
	provider     ProviderService
	refundRepo   repository.RefundRepository
	txManager    repository.TxManager
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

func NewPurchaseWorkflowService(wallets WalletService, transactions TransactionService,
	provider ProviderService, refundRepo repository.RefundRepository, txManager repository.TxManager,
	logger *zap.Logger, metrics *metrics.Metrics) PurchaseWorkflowService {
	return &purchaseWorkflowService{
		wallets:      wallets,
		transactions: transactions,
		provider:     provider,
		refundRepo:   refundRepo,
		txManager:    txManager,
		logger:       logger,
		metrics:      metrics,
	}
}

func (s *purchaseWorkflowService) Purchase(ctx context.Context, cmd PurchaseCommand) (PurchaseResult, error) {
	if cmd.UserID == "" {
		return PurchaseResult{}, NewServiceError(constants.ErrCodeUnauthenticated,
			errors.New("purchase requires an authenticated user"))
	}

	var tx model.Transaction
	var wallet WalletResult

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		tx, err = s.transactions.Create(ctx, CreateTransactionCommand{
			UserID:         cmd.UserID,
			Amount:         cmd.Amount,
			ServiceType:    cmd.ServiceType,
			Provider:       cmd.Provider,
			Recipient:      cmd.Recipient,
			ProductName:    cmd.ProductName,
			IdempotencyKey: cmd.IdempotencyKey,
		})
		if err != nil {
			return err
		}

		wallet, err = s.wallets.Debit(ctx, DebitCommand{
			UserID:         cmd.UserID,
			Amount:         cmd.Amount,
			IdempotencyKey: "debit-" + cmd.IdempotencyKey,
		})
		return err
	})

	if err != nil {
		var svcErr Error
		if errors.As(err, &svcErr) && svcErr.Code == constants.ErrCodeDuplicateRequest {
			return s.replay(ctx, cmd)
		}

		s.metrics.RecordPurchase(string(cmd.ServiceType), "rejected")
		return PurchaseResult{}, err
	}

	resp, providerErr := s.provider.PurchaseWithRetry(ctx, vtuprovider.Request{
		Reference:   tx.Reference,
		ServiceType: string(cmd.ServiceType),
		Provider:    cmd.Provider,
		Recipient:   cmd.Recipient,
		Amount:      cmd.Amount,
		ProductName: cmd.ProductName,
	})

	if providerErr == nil && resp.Status == vtuprovider.StatusSuccess {
		return s.complete(ctx, tx, wallet)
	}

	return s.fail(ctx, cmd, tx, wallet, resp, providerErr)
}

func (s *purchaseWorkflowService) complete(ctx context.Context, tx model.Transaction, wallet WalletResult) (PurchaseResult, error) {
	if err := s.transactions.MarkCompleted(ctx, tx.ID); err != nil {
		// The money moved and the provider fulfilled; the row stays PENDING
		// until reconciliation picks it up.
		s.logger.Error("Fulfilled purchase left in PENDING state",
			zap.Int64("transactionID", tx.ID),
			zap.String("reference", tx.Reference),
			zap.Error(err))
	}

	s.logger.Info("Purchase completed",
		zap.Int64("transactionID", tx.ID),
		zap.String("reference", tx.Reference),
		zap.String("userID", tx.UserID),
		zap.Int64("amount", tx.Amount))
	s.metrics.RecordPurchase(string(tx.ServiceType), string(model.TransactionStatusCompleted))

	return PurchaseResult{
		TransactionID: tx.ID,
		Reference:     tx.Reference,
		Status:        model.TransactionStatusCompleted,
		NewBalance:    wallet.Balance,
	}, nil
}

// fail finalizes a purchase the upstream did not fulfill: the transaction is
// marked FAILED and a refund row is opened in the same database transaction,
// so the compensation can never be lost between the two writes.
func (s *purchaseWorkflowService) fail(ctx context.Context, cmd PurchaseCommand, tx model.Transaction,
	wallet WalletResult, resp vtuprovider.Response, providerErr error) (PurchaseResult, error) {
	reason := resp.Detail
	if providerErr != nil {
		reason = providerErr.Error()
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.transactions.MarkFailed(ctx, tx.ID); err != nil {
			return err
		}

		return s.refundRepo.Create(ctx, &model.Refund{
			TransactionID: tx.ID,
			UserID:        tx.UserID,
			Amount:        tx.Amount,
			State:         model.RefundStatePending,
			LastError:     &reason,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		})
	})

	if err != nil {
		s.logger.Error("CRITICAL: failed purchase could not be compensated",
			zap.Int64("transactionID", tx.ID),
			zap.String("reference", tx.Reference),
			zap.String("userID", tx.UserID),
			zap.Int64("amount", tx.Amount),
			zap.Error(err))
		return PurchaseResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	s.logger.Warn("Purchase failed, refund queued",
		zap.Int64("transactionID", tx.ID),
		zap.String("reference", tx.Reference),
		zap.String("reason", reason))
	s.metrics.RecordPurchase(string(cmd.ServiceType), string(model.TransactionStatusFailed))

	return PurchaseResult{
		TransactionID: tx.ID,
		Reference:     tx.Reference,
		Status:        model.TransactionStatusFailed,
		NewBalance:    wallet.Balance,
		RefundPending: true,
	}, nil
}

// replay returns the outcome of an earlier attempt that carried the same
// idempotency key instead of charging the wallet twice.
func (s *purchaseWorkflowService) replay(ctx context.Context, cmd PurchaseCommand) (PurchaseResult, error) {
	existing, err := s.transactions.GetByIdempotencyKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		return PurchaseResult{}, err
	}

	balance, err := s.wallets.GetBalance(ctx, cmd.UserID)
	if err != nil {
		return PurchaseResult{}, err
	}

	s.logger.Info("Idempotent purchase replay",
		zap.String("userID", cmd.UserID),
		zap.String("idempotencyKey", cmd.IdempotencyKey),
		zap.String("status", string(existing.Status)))

	return PurchaseResult{
		TransactionID: existing.ID,
		Reference:     existing.Reference,
		Status:        existing.Status,
		NewBalance:    balance,
		RefundPending: existing.Status == model.TransactionStatusFailed,
	}, nil
}
