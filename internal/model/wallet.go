package model

import "time"

type WalletAccount struct {
	UserID    string    `gorm:"column:user_id;primaryKey;type:char(36)" json:"user_id"`
	Balance   int64     `gorm:"column:balance;not null;default:0" json:"balance"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

func (WalletAccount) TableName() string {
	return "wallet_accounts"
}

type EntryType string

const (
	EntryTypeCredit EntryType = "CREDIT"
	EntryTypeDebit  EntryType = "DEBIT"
)

// WalletEntry is the ledger row written alongside every balance mutation.
// The (entry_type, idempotency_key) unique index makes retried mutations
// no-ops.
type WalletEntry struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID         string    `gorm:"type:char(36);not null;index"`
	EntryType      EntryType `gorm:"type:enum('CREDIT','DEBIT');not null;index:idx_entry_idem,unique"`
	Amount         int64     `gorm:"not null"`
	IdempotencyKey string    `gorm:"type:varchar(191);not null;index:idx_entry_idem,unique"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (WalletEntry) TableName() string {
	return "wallet_entries"
}
