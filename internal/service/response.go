package service

import "github.com/vtuhub/vtugateway/internal/model"

type WalletResult struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type PurchaseResult struct {
	TransactionID int64                   `json:"transaction_id"`
	Reference     string                  `json:"reference"`
	Status        model.TransactionStatus `json:"status"`
	NewBalance    int64                   `json:"new_balance"`
	RefundPending bool                    `json:"refund_pending"`
}

type TransactionListResult struct {
	Transactions []model.Transaction `json:"transactions"`
	Total        int64               `json:"total"`
}
