package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/repository"
	"github.com/vtuhub/vtugateway/pkg/mq"
	"go.uber.org/zap"
)

type RefundService interface {
	Process(ctx context.Context, cmd ProcessRefundCommand) error
}

type refundService struct {
	refundRepo repository.RefundRepository
	wallets    WalletService
	txManager  repository.TxManager
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewRefundService(refundRepo repository.RefundRepository, wallets WalletService,
	txManager repository.TxManager, logger *zap.Logger, metrics *metrics.Metrics) RefundService {
	return &refundService{refundRepo: refundRepo, wallets: wallets, txManager: txManager,
		logger: logger, metrics: metrics}
}

// Process credits the wallet for a failed purchase and marks the refund row
// REFUNDED, both in one database transaction. Transient failures are wrapped
// with mq.TempError so the consumer requeues the message.
func (s *refundService) Process(ctx context.Context, cmd ProcessRefundCommand) error {
	refund, err := s.getRefundable(cmd.RefundID)
	if err != nil || refund == nil {
		return err
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.wallets.Credit(ctx, CreditCommand{
			UserID:         refund.UserID,
			Amount:         refund.Amount,
			IdempotencyKey: fmt.Sprintf("refund-%d", refund.TransactionID),
		})
		if err != nil {
			return err
		}

		now := time.Now()
		refund.State = model.RefundStateRefunded
		refund.UpdatedAt = now

		return s.refundRepo.Update(ctx, refund)
	})

	if err != nil {
		s.logger.Error("Failed to process refund",
			zap.Int64("refundID", cmd.RefundID),
			zap.Int64("transactionID", refund.TransactionID),
			zap.Error(err))
		s.metrics.RecordRefund("error")
		return mq.Temporary(err)
	}

	s.logger.Info("Refund processed",
		zap.Int64("refundID", cmd.RefundID),
		zap.Int64("transactionID", refund.TransactionID),
		zap.String("userID", refund.UserID),
		zap.Int64("amount", refund.Amount))
	s.metrics.RecordRefund("success")

	return nil
}

func (s *refundService) getRefundable(refundID int64) (*model.Refund, error) {
	refund, err := s.refundRepo.GetByID(refundID)
	if err != nil {
		if errors.Is(err, repository.ErrRefundNotFound) {
			// Nothing to requeue; the row never existed or was purged.
			s.logger.Warn("Refund not found, dropping message", zap.Int64("refundID", refundID))
			return nil, nil
		}
		return nil, mq.Temporary(err)
	}

	switch refund.State {
	case model.RefundStatePending:
		return refund, nil
	case model.RefundStateRefunded:
		s.logger.Info("Refund already processed", zap.Int64("refundID", refundID))
		return nil, nil
	default:
		s.logger.Warn("Refund in unexpected state, dropping message",
			zap.Int64("refundID", refundID),
			zap.String("state", refund.State))
		return nil, nil
	}
}
