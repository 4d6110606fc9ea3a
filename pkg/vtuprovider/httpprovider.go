package vtuprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vtuhub/vtugateway/pkg/httpclient"
)

const PurchaseEndpoint = "/v1/purchase"

type HTTPProvider struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewHTTPProvider(cfg Config, client httpclient.HTTPClient) Provider {
	return &HTTPProvider{cfg: cfg, client: client}
}

func (p *HTTPProvider) Purchase(ctx context.Context, req Request) (Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return Response{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + p.cfg.APIKey,
	}

	resp, err := p.client.Post(ctx, p.cfg.URL+PurchaseEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, ErrTimeout
		}

		return Response{}, ErrNetwork
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, MapStatusToError(resp.StatusCode)
	}

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return Response{}, fmt.Errorf("decoding error: %w", err)
	}

	return response, nil
}
