package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/vtuhub/vtugateway/internal/model"
	"gorm.io/gorm"
)

var ErrEntryExists = errors.New("ENTRY_EXISTS")
var ErrEntryNotFound = errors.New("ENTRY_NOT_FOUND")

type WalletEntryRepository interface {
	Create(ctx context.Context, entry *model.WalletEntry) error
	GetByIdempotencyKey(ctx context.Context, entryType model.EntryType, idempotencyKey string) (*model.WalletEntry, error)
}

type walletEntry struct {
	db *gorm.DB
}

func NewWalletEntryRepository(db *gorm.DB) WalletEntryRepository {
	return &walletEntry{db: db}
}

func (w *walletEntry) Create(ctx context.Context, entry *model.WalletEntry) error {
	db := GetTx(ctx, w.db)

	err := db.Create(entry).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrEntryExists
	}

	return err
}

func (w *walletEntry) GetByIdempotencyKey(ctx context.Context, entryType model.EntryType, idempotencyKey string) (*model.WalletEntry, error) {
	db := GetTx(ctx, w.db)

	var entry model.WalletEntry
	err := db.Where("entry_type = ? AND idempotency_key = ?", entryType, idempotencyKey).First(&entry).Error
	if err == nil {
		return &entry, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}

	return nil, err
}
