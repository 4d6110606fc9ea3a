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
	ErrWalletNotFound      = errors.New("WALLET_NOT_FOUND")
	ErrWalletExists        = errors.New("WALLET_EXISTS")
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
)

type WalletRepository interface {
	Create(ctx context.Context, account *model.WalletAccount) error
	FindByUserID(ctx context.Context, userID string) (model.WalletAccount, error)
	Debit(ctx context.Context, userID string, amount int64) error
	Credit(ctx context.Context, userID string, amount int64) error
}

type wallet struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &wallet{db: db}
}

func (w *wallet) Create(ctx context.Context, account *model.WalletAccount) error {
	db := GetTx(ctx, w.db)

	err := db.Create(account).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrWalletExists
	}

	return err
}

func (w *wallet) FindByUserID(ctx context.Context, userID string) (model.WalletAccount, error) {
	db := GetTx(ctx, w.db)

	var account model.WalletAccount
	err := db.Where("user_id = ?", userID).First(&account).Error
	if err == nil {
		return account, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WalletAccount{}, ErrWalletNotFound
	}

	return model.WalletAccount{}, err
}

// Debit applies a single conditional update so two concurrent debits can
// never both drain the same funds.
func (w *wallet) Debit(ctx context.Context, userID string, amount int64) error {
	db := GetTx(ctx, w.db)

	result := db.Model(&model.WalletAccount{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := w.FindByUserID(ctx, userID); err != nil {
			return err
		}

		return ErrInsufficientBalance
	}

	return nil
}

func (w *wallet) Credit(ctx context.Context, userID string, amount int64) error {
	db := GetTx(ctx, w.db)

	result := db.Model(&model.WalletAccount{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}

	return nil
}
