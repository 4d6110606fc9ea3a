package main

import (
	"context"
	"time"

	"github.com/vtuhub/vtugateway/internal/config"
	"github.com/vtuhub/vtugateway/internal/publishers"
	"github.com/vtuhub/vtugateway/internal/repository"
	"github.com/vtuhub/vtugateway/internal/service"
	"github.com/vtuhub/vtugateway/pkg/mq"
	"github.com/vtuhub/vtugateway/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,

			repository.NewRefundRepository,

			service.NewRefundQueueService,

			NewRefundPublisher,
		),
		fx.Invoke(runRefundPublisher),
	).Run()
}

func runRefundPublisher(cfg *config.Config, publisher publishers.RefundPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.RefundQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", publishers.RefundQueue))

			go func() {
				ticker := time.NewTicker(cfg.Publisher.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := publisher.Publish(appCtx); err != nil {
							logger.Error("failed to publish refunds", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("publisher context cancelled")
						return
					}
				}
			}()

			logger.Info("refund publisher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping refund publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewRefundPublisher(queueService service.RefundQueueService, publisher mq.Publisher,
	cfg *config.Config, logger *zap.Logger) publishers.RefundPublisher {
	return publishers.NewRefundPublisher(queueService, publisher, cfg.Publisher.BatchSize, logger)
}
