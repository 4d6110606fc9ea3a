package v1

type TopUpRequest struct {
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	IdempotencyKey string `json:"idempotency_key" validate:"required"`
}

type PurchaseRequest struct {
	ServiceType    string `json:"service_type" validate:"required,oneof=airtime data cable_tv electricity"`
	Provider       string `json:"provider" validate:"required"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	RecipientPhone string `json:"recipient_phone" validate:"omitempty,msisdn"`
	ProductName    string `json:"product_name"`
	IdempotencyKey string `json:"idempotency_key" validate:"required"`
}
