package service

import (
	"context"
	"errors"
	"time"

	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/metrics"
	"github.com/vtuhub/vtugateway/pkg/vtuprovider"
	"go.uber.org/zap"
)

type ProviderService interface {
	PurchaseWithRetry(ctx context.Context, req vtuprovider.Request) (vtuprovider.Response, error)
}

type providerService struct {
	provider vtuprovider.Provider
	cfg      vtuprovider.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewProviderService(provider vtuprovider.Provider, cfg vtuprovider.Config,
	logger *zap.Logger, metrics *metrics.Metrics) ProviderService {
	return &providerService{provider: provider, cfg: cfg, logger: logger, metrics: metrics}
}

// PurchaseWithRetry calls the upstream provider, retrying transient failures
// up to the configured attempt count. A response with a failed status is a
// final outcome and is never retried. Invalid recipient errors are not
// retryable either; only timeouts, network and server errors are.
func (s *providerService) PurchaseWithRetry(ctx context.Context, req vtuprovider.Request) (vtuprovider.Response, error) {
	maxRetry := s.cfg.MaxRetry
	if maxRetry < 1 {
		maxRetry = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetry; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		start := time.Now()
		resp, err := s.provider.Purchase(callCtx, req)
		elapsed := time.Since(start)
		cancel()

		if err == nil {
			s.metrics.RecordProviderCall(req.Provider, string(resp.Status), elapsed)
			return resp, nil
		}

		s.metrics.RecordProviderCall(req.Provider, "error", elapsed)

		if errors.Is(err, vtuprovider.ErrInvalidRecipient) {
			s.logger.Warn("Provider rejected recipient",
				zap.String("reference", req.Reference),
				zap.String("recipient", req.Recipient),
				zap.Error(err))
			return vtuprovider.Response{}, NewServiceError(constants.ErrCodeInvalidRecipient, err)
		}

		lastErr = err
		s.logger.Warn("Provider call failed",
			zap.String("reference", req.Reference),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == maxRetry {
			break
		}

		backoff := time.Duration(attempt) * 100 * time.Millisecond
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return vtuprovider.Response{}, NewServiceError(constants.ErrCodeProviderUnavailable, ctx.Err())
		}
	}

	s.logger.Error("Provider retries exhausted",
		zap.String("reference", req.Reference),
		zap.Int("attempts", maxRetry),
		zap.Error(lastErr))

	return vtuprovider.Response{}, NewServiceError(constants.ErrCodeProviderUnavailable, lastErr)
}
