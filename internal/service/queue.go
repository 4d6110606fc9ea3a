package service

import (
	"context"
	"time"

	"github.com/vtuhub/vtugateway/internal/repository"
	"go.uber.org/zap"
)

type RefundQueueService interface {
	FindRefundsToQueue(ctx context.Context, limit int) ([]ProcessRefundCommand, error)
	MarkRefundAsQueued(ctx context.Context, refundID int64) error
}

type refundQueueService struct {
	refundRepo repository.RefundRepository
	logger     *zap.Logger
}

func NewRefundQueueService(refundRepo repository.RefundRepository, logger *zap.Logger) RefundQueueService {
	return &refundQueueService{refundRepo: refundRepo, logger: logger}
}

func (s *refundQueueService) FindRefundsToQueue(ctx context.Context, limit int) ([]ProcessRefundCommand, error) {
	refunds, err := s.refundRepo.FindUnpublishedPending(limit)
	if err != nil {
		s.logger.Error("Failed to find refunds to queue", zap.Error(err))
		return nil, err
	}

	commands := make([]ProcessRefundCommand, 0, len(refunds))
	for _, r := range refunds {
		commands = append(commands, ProcessRefundCommand{
			RefundID:      r.ID,
			TransactionID: r.TransactionID,
			UserID:        r.UserID,
			Amount:        r.Amount,
		})
	}

	return commands, nil
}

func (s *refundQueueService) MarkRefundAsQueued(ctx context.Context, refundID int64) error {
	refund, err := s.refundRepo.GetByID(refundID)
	if err != nil {
		return err
	}

	now := time.Now()
	refund.Published = true
	refund.PublishedAt = &now
	refund.UpdatedAt = now

	return s.refundRepo.Update(ctx, refund)
}
