package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/vtuhub/vtugateway/internal/model"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound  = errors.New("TRANSACTION_NOT_FOUND")
	ErrTransactionDuplicate = errors.New("TRANSACTION_DUPLICATE")
	ErrNoRowsAffected       = errors.New("NO_ROWS_AFFECTED")
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*model.Transaction, error)
	UpdateStatusFromPending(ctx context.Context, id int64, status model.TransactionStatus) error
	GetByUserID(userID string, limit, offset int) ([]model.Transaction, error)
	CountByUserID(userID string) (int64, error)
}

type transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transaction{db: db}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, t.db)

	err := db.Create(tx).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTransactionDuplicate
	}

	return err
}

func (t *transaction) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var tx model.Transaction
	err := db.Where("id = ?", id).First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *transaction) GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var tx model.Transaction
	err := db.Where("idempotency_key = ?", idempotencyKey).First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

// UpdateStatusFromPending moves a transaction out of PENDING. The WHERE
// clause is the transition guard: terminal rows are never rewritten, so a
// zero rows-affected result signals an illegal transition.
func (t *transaction) UpdateStatusFromPending(ctx context.Context, id int64, status model.TransactionStatus) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, model.TransactionStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *transaction) GetByUserID(userID string, limit, offset int) ([]model.Transaction, error) {
	var txs []model.Transaction

	err := t.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (t *transaction) CountByUserID(userID string) (int64, error) {
	var count int64

	err := t.db.Model(&model.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
