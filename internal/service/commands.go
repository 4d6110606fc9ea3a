package service

import "github.com/vtuhub/vtugateway/internal/model"

type TopUpCommand struct {
	UserID         string
	Amount         int64
	IdempotencyKey string
}

type DebitCommand struct {
	UserID         string
	Amount         int64
	IdempotencyKey string
}

type CreditCommand struct {
	UserID         string
	Amount         int64
	IdempotencyKey string
}

type CreateTransactionCommand struct {
	UserID         string
	Amount         int64
	ServiceType    model.ServiceType
	Provider       string
	Recipient      string
	ProductName    string
	IdempotencyKey string
}

type ListTransactionsCommand struct {
	UserID string
	Limit  int
	Offset int
}

type PurchaseCommand struct {
	UserID         string
	ServiceType    model.ServiceType
	Provider       string
	Amount         int64
	Recipient      string
	ProductName    string
	IdempotencyKey string
}

type ProcessRefundCommand struct {
	RefundID      int64  `json:"refund_id"`
	TransactionID int64  `json:"transaction_id"`
	UserID        string `json:"user_id"`
	Amount        int64  `json:"amount"`
}
