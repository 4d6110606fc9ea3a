package publishers

import (
	"context"
	"encoding/json"

	"github.com/vtuhub/vtugateway/internal/service"
	"github.com/vtuhub/vtugateway/pkg/mq"
	"go.uber.org/zap"
)

const RefundQueue = "wallet.refund"

type RefundPublisher interface {
	Publish(ctx context.Context) error
}

type refundPublisher struct {
	service   service.RefundQueueService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewRefundPublisher(service service.RefundQueueService, publisher mq.Publisher,
	batchSize int, logger *zap.Logger) RefundPublisher {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &refundPublisher{service: service, publisher: publisher, batchSize: batchSize, logger: logger}
}

func (r *refundPublisher) Publish(ctx context.Context) error {
	refunds, err := r.service.FindRefundsToQueue(ctx, r.batchSize)
	if err != nil {
		return err
	}

	if len(refunds) == 0 {
		return nil
	}

	r.logger.Info("Publishing refunds", zap.Int("count", len(refunds)))

	successCount := 0
	for _, refund := range refunds {
		body, _ := json.Marshal(refund)
		if err := r.publisher.Publish(ctx, "", RefundQueue, body); err != nil {
			r.logger.Error("Failed to publish refund",
				zap.Error(err),
				zap.Int64("refundID", refund.RefundID))
			continue
		}

		if err := r.service.MarkRefundAsQueued(ctx, refund.RefundID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		r.logger.Info("Successfully published refunds",
			zap.Int("published", successCount),
			zap.Int("total", len(refunds)))
	}

	return nil
}
