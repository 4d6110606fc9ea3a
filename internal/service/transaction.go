package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type TransactionService interface {
	Create(ctx context.Context, cmd CreateTransactionCommand) (model.Transaction, error)
	MarkCompleted(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*model.Transaction, error)
	List(ctx context.Context, cmd ListTransactionsCommand) (TransactionListResult, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *zap.Logger
}

func NewTransactionService(transactionRepo repository.TransactionRepository, logger *zap.Logger) TransactionService {
	return &transactionService{transactionRepo: transactionRepo, logger: logger}
}

func (s *transactionService) Create(ctx context.Context, cmd CreateTransactionCommand) (model.Transaction, error) {
	details, err := json.Marshal(map[string]string{
		"product_name": cmd.ProductName,
		"provider":     cmd.Provider,
		"service_type": string(cmd.ServiceType),
	})
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	detailsJSON := string(details)
	recipient := cmd.Recipient
	if recipient == "" {
		recipient = "N/A"
	}

	tx := model.Transaction{
		Reference:      uuid.NewString(),
		UserID:         cmd.UserID,
		Amount:         cmd.Amount,
		ServiceType:    cmd.ServiceType,
		Provider:       cmd.Provider,
		Recipient:      recipient,
		Details:        &detailsJSON,
		Status:         model.TransactionStatusPending,
		IdempotencyKey: cmd.IdempotencyKey,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	err = s.transactionRepo.Create(ctx, &tx)
	if err == nil {
		return tx, nil
	}

	if errors.Is(err, repository.ErrTransactionDuplicate) {
		s.logger.Warn("Duplicate transaction detected",
			zap.String("userID", cmd.UserID),
			zap.String("idempotencyKey", cmd.IdempotencyKey))
		return model.Transaction{}, NewServiceError(constants.ErrCodeDuplicateRequest, err)
	}

	s.logger.Error("Failed to create transaction",
		zap.String("userID", cmd.UserID),
		zap.Error(err))

	return model.Transaction{}, NewServiceError(constants.ErrCodeInternalError, err)
}

func (s *transactionService) MarkCompleted(ctx context.Context, id int64) error {
	return s.markStatus(ctx, id, model.TransactionStatusCompleted)
}

func (s *transactionService) MarkFailed(ctx context.Context, id int64) error {
	return s.markStatus(ctx, id, model.TransactionStatusFailed)
}

func (s *transactionService) Cancel(ctx context.Context, id int64) error {
	return s.markStatus(ctx, id, model.TransactionStatusCancelled)
}

// markStatus performs the single legal transition PENDING -> terminal. A
// repeated call with the same target is a no-op; any other transition is
// rejected.
func (s *transactionService) markStatus(ctx context.Context, id int64, status model.TransactionStatus) error {
	err := s.transactionRepo.UpdateStatusFromPending(ctx, id, status)
	if err == nil {
		return nil
	}

	if !errors.Is(err, repository.ErrNoRowsAffected) {
		s.logger.Error("Failed to update transaction status",
			zap.Int64("transactionID", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	tx, getErr := s.transactionRepo.GetByID(ctx, id)
	if getErr != nil {
		if errors.Is(getErr, repository.ErrTransactionNotFound) {
			return NewServiceError(constants.ErrCodeTransactionNotFound, getErr)
		}
		return NewServiceError(constants.ErrCodeInternalError, getErr)
	}

	if tx.Status == status {
		s.logger.Info("Transaction already in target status",
			zap.Int64("transactionID", id),
			zap.String("status", string(status)))
		return nil
	}

	s.logger.Warn("Rejected illegal status transition",
		zap.Int64("transactionID", id),
		zap.String("from", string(tx.Status)),
		zap.String("to", string(status)))

	return NewServiceError(constants.ErrCodeInvalidStatusTransition, err)
}

func (s *transactionService) GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*model.Transaction, error) {
	tx, err := s.transactionRepo.GetByIdempotencyKey(ctx, idempotencyKey)
	if err == nil {
		return tx, nil
	}

	if errors.Is(err, repository.ErrTransactionNotFound) {
		return nil, NewServiceError(constants.ErrCodeTransactionNotFound, err)
	}

	return nil, NewServiceError(constants.ErrCodeInternalError, err)
}

func (s *transactionService) List(ctx context.Context, cmd ListTransactionsCommand) (TransactionListResult, error) {
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset := cmd.Offset
	if offset < 0 {
		offset = 0
	}

	txs, err := s.transactionRepo.GetByUserID(cmd.UserID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list transactions",
			zap.String("userID", cmd.UserID),
			zap.Error(err))
		return TransactionListResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	total, err := s.transactionRepo.CountByUserID(cmd.UserID)
	if err != nil {
		return TransactionListResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return TransactionListResult{Transactions: txs, Total: total}, nil
}
