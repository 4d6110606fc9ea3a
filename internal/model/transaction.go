package model

import "time"

type ServiceType string

const (
	ServiceTypeAirtime     ServiceType = "airtime"
	ServiceTypeData        ServiceType = "data"
	ServiceTypeCableTV     ServiceType = "cable_tv"
	ServiceTypeElectricity ServiceType = "electricity"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// Terminal reports whether no further status transition is allowed.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

type Transaction struct {
	ID             int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Reference      string            `gorm:"column:reference;type:char(36);uniqueIndex;<-:create"`
	UserID         string            `gorm:"column:user_id;type:char(36);index;not null"`
	Amount         int64             `gorm:"column:amount;not null"`
	ServiceType    ServiceType       `gorm:"column:service_type;type:enum('airtime','data','cable_tv','electricity');not null"`
	Provider       string            `gorm:"column:provider;type:varchar(64);not null"`
	Recipient      string            `gorm:"column:recipient;type:varchar(32);not null"`
	Details        *string           `gorm:"column:details;type:json"`
	Status         TransactionStatus `gorm:"column:status;type:enum('PENDING','COMPLETED','FAILED','CANCELLED');not null"`
	IdempotencyKey string            `gorm:"column:idempotency_key;type:varchar(191);uniqueIndex;<-:create"`
	CreatedAt      time.Time         `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}
