package vtuprovider

import (
	"context"
	"time"
)

const (
	ModeSimulator = "simulator"
	ModeHTTP      = "http"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

type Config struct {
	Mode        string        `mapstructure:"mode"`
	URL         string        `mapstructure:"url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetry    int           `mapstructure:"max_retry"`
	Latency     time.Duration `mapstructure:"latency"`
	SuccessRate float64       `mapstructure:"success_rate"`
}

type Request struct {
	Reference   string `json:"reference"`
	ServiceType string `json:"service_type"`
	Provider    string `json:"provider"`
	Recipient   string `json:"recipient"`
	Amount      int64  `json:"amount"`
	ProductName string `json:"product_name,omitempty"`
}

// Response carries the upstream outcome. A failed status is a normal
// terminal outcome, not an error; errors indicate the call itself did not
// complete.
type Response struct {
	Status      Status `json:"status"`
	Reference   string `json:"reference"`
	ProviderRef string `json:"provider_ref,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// Provider is the upstream fulfillment capability. The simulator and the
// HTTP client are interchangeable implementations.
type Provider interface {
	Purchase(ctx context.Context, req Request) (Response, error)
}
