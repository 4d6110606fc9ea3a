package model

import "time"

const (
	RefundStatePending  = "PENDING"
	RefundStateRefunded = "REFUNDED"
	RefundStateFailed   = "FAILED"
)

// Refund is the compensation outbox row created when a debited purchase
// fails at the upstream. The publisher drains unpublished rows onto the
// wallet.refund queue.
type Refund struct {
	ID            int64      `gorm:"primaryKey;autoIncrement;<-:create"`
	TransactionID int64      `gorm:"not null;uniqueIndex;<-:create"`
	UserID        string     `gorm:"type:char(36);not null"`
	Amount        int64      `gorm:"not null"`
	State         string     `gorm:"type:enum('PENDING','REFUNDED','FAILED');not null"`
	Published     bool       `gorm:"default:false;not null"`
	PublishedAt   *time.Time `gorm:"type:timestamp;null"`
	LastError     *string    `gorm:"type:text;null"`
	CreatedAt     time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`

	Transaction Transaction `gorm:"foreignKey:TransactionID"`
}
