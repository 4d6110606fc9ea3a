package publishers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/mocks"
	"github.com/vtuhub/vtugateway/internal/publishers"
	"github.com/vtuhub/vtugateway/internal/service"
	"go.uber.org/zap"
)

func TestRefundPublisher_Publish(t *testing.T) {
	logger := zap.NewNop()

	commands := []service.ProcessRefundCommand{
		{RefundID: 1, TransactionID: 10, UserID: "user-1", Amount: 500},
		{RefundID: 2, TransactionID: 11, UserID: "user-2", Amount: 300},
	}

	t.Run("Publishes pending refunds and marks them queued", func(t *testing.T) {
		queueService := &mocks.RefundQueueService{}
		publisher := &mocks.Publisher{}
		refundPublisher := publishers.NewRefundPublisher(queueService, publisher, 100, logger)

		queueService.On("FindRefundsToQueue", mock.Anything, 100).Return(commands, nil)
		publisher.On("Publish", mock.Anything, "", publishers.RefundQueue, mock.Anything).Return(nil)
		queueService.On("MarkRefundAsQueued", mock.Anything, int64(1)).Return(nil)
		queueService.On("MarkRefundAsQueued", mock.Anything, int64(2)).Return(nil)

		err := refundPublisher.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNumberOfCalls(t, "Publish", 2)
		queueService.AssertExpectations(t)
	})

	t.Run("Nothing pending publishes nothing", func(t *testing.T) {
		queueService := &mocks.RefundQueueService{}
		publisher := &mocks.Publisher{}
		refundPublisher := publishers.NewRefundPublisher(queueService, publisher, 100, logger)

		queueService.On("FindRefundsToQueue", mock.Anything, 100).
			Return([]service.ProcessRefundCommand{}, nil)

		err := refundPublisher.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed publish leaves the refund unqueued", func(t *testing.T) {
		queueService := &mocks.RefundQueueService{}
		publisher := &mocks.Publisher{}
		refundPublisher := publishers.NewRefundPublisher(queueService, publisher, 100, logger)

		queueService.On("FindRefundsToQueue", mock.Anything, 100).Return(commands[:1], nil)
		publisher.On("Publish", mock.Anything, "", publishers.RefundQueue, mock.Anything).
			Return(errors.New("channel closed"))

		err := refundPublisher.Publish(context.Background())

		assert.NoError(t, err)
		queueService.AssertNotCalled(t, "MarkRefundAsQueued", mock.Anything, mock.Anything)
	})

	t.Run("Lookup failure propagates", func(t *testing.T) {
		queueService := &mocks.RefundQueueService{}
		publisher := &mocks.Publisher{}
		refundPublisher := publishers.NewRefundPublisher(queueService, publisher, 100, logger)

		queueService.On("FindRefundsToQueue", mock.Anything, 100).
			Return(nil, errors.New("connection refused"))

		err := refundPublisher.Publish(context.Background())

		assert.Error(t, err)
	})
}
