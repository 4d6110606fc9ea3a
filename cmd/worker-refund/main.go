package main

import (
	"context"

	"github.com/vtuhub/vtugateway/internal/config"
	"github.com/vtuhub/vtugateway/internal/consumers"
	"github.com/vtuhub/vtugateway/internal/metrics"
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
			metrics.NewMetrics,

			NewConnectionDB,
			NewMQConnection,
			NewMQConsumer,

			repository.NewTransactionManager,
			repository.NewWalletRepository,
			repository.NewWalletEntryRepository,
			repository.NewRefundRepository,

			service.NewWalletService,
			service.NewRefundService,

			consumers.NewRefundConsumer,
		),
		fx.Invoke(runRefundConsumer),
	).Run()
}

func runRefundConsumer(refundConsumer consumers.RefundConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.RefundQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", publishers.RefundQueue))

			go func() {
				if err := refundConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("refund consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping refund consumer")
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

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
