package model

import "time"

type NetworkProvider string

const (
	NetworkMTN     NetworkProvider = "mtn"
	NetworkGlo     NetworkProvider = "glo"
	NetworkAirtel  NetworkProvider = "airtel"
	Network9Mobile NetworkProvider = "9mobile"
)

type DataPlan struct {
	ID              string          `gorm:"primaryKey;type:char(36)" json:"id"`
	PlanName        string          `gorm:"column:plan_name" json:"plan_name"`
	DataSize        string          `gorm:"column:data_size" json:"data_size"`
	Price           int64           `gorm:"column:price" json:"price"`
	ValidityDays    int             `gorm:"column:validity_days" json:"validity_days"`
	NetworkProvider NetworkProvider `gorm:"column:network_provider;type:enum('mtn','glo','airtel','9mobile')" json:"network_provider"`
	IsActive        bool            `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"created_at"`
}

type AirtimeProduct struct {
	ID              string          `gorm:"primaryKey;type:char(36)" json:"id"`
	NetworkProvider NetworkProvider `gorm:"column:network_provider;type:enum('mtn','glo','airtel','9mobile')" json:"network_provider"`
	Denomination    int64           `gorm:"column:denomination" json:"denomination"`
	Bonus           int64           `gorm:"column:bonus;default:0" json:"bonus"`
	IsActive        bool            `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"created_at"`
}

type CablePackage struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	PackageName  string    `gorm:"column:package_name" json:"package_name"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	Price        int64     `gorm:"column:price" json:"price"`
	ValidityDays int       `gorm:"column:validity_days" json:"validity_days"`
	Provider     string    `gorm:"column:provider" json:"provider"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

type Disco struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	DiscoName string    `gorm:"column:disco_name" json:"disco_name"`
	DiscoCode string    `gorm:"column:disco_code" json:"disco_code"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Disco) TableName() string {
	return "electricity_discos"
}
