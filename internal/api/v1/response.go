package v1

import "github.com/vtuhub/vtugateway/internal/model"

type WalletResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type PurchaseResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	NewBalance    int64  `json:"new_balance"`
	RefundPending bool   `json:"refund_pending"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

type TransactionResponse struct {
	TransactionID int64   `json:"transaction_id"`
	Reference     string  `json:"reference"`
	Amount        int64   `json:"amount"`
	ServiceType   string  `json:"service_type"`
	Provider      string  `json:"provider"`
	Recipient     string  `json:"recipient"`
	Status        string  `json:"status"`
	Details       *string `json:"details,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func toTransactionResponse(tx model.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: tx.ID,
		Reference:     tx.Reference,
		Amount:        tx.Amount,
		ServiceType:   string(tx.ServiceType),
		Provider:      tx.Provider,
		Recipient:     tx.Recipient,
		Status:        string(tx.Status),
		Details:       tx.Details,
		CreatedAt:     tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
