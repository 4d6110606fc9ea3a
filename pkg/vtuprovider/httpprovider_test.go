package vtuprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vtuhub/vtugateway/pkg/httpclient"
	"github.com/vtuhub/vtugateway/pkg/vtuprovider"
)

func newProvider(serverURL string) vtuprovider.Provider {
	cfg := vtuprovider.Config{URL: serverURL, APIKey: "test-key", Timeout: 2 * time.Second}
	return vtuprovider.NewHTTPProvider(cfg, httpclient.NewHTTPClient(cfg.Timeout))
}

func TestHTTPProvider_Purchase(t *testing.T) {
	req := vtuprovider.Request{
		Reference:   "ref-9",
		ServiceType: "data",
		Provider:    "glo",
		Recipient:   "08051234567",
		Amount:      1200,
	}

	t.Run("Decodes successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, vtuprovider.PurchaseEndpoint, r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var got vtuprovider.Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, req.Reference, got.Reference)

			json.NewEncoder(w).Encode(vtuprovider.Response{
				Status:      vtuprovider.StatusSuccess,
				Reference:   got.Reference,
				ProviderRef: "UP-001",
			})
		}))
		defer server.Close()

		resp, err := newProvider(server.URL).Purchase(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, vtuprovider.StatusSuccess, resp.Status)
		assert.Equal(t, "UP-001", resp.ProviderRef)
	})

	t.Run("Maps 400 to invalid recipient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := newProvider(server.URL).Purchase(context.Background(), req)
		assert.ErrorIs(t, err, vtuprovider.ErrInvalidRecipient)
	})

	t.Run("Maps 503 to server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newProvider(server.URL).Purchase(context.Background(), req)
		assert.ErrorIs(t, err, vtuprovider.ErrServer)
	})

	t.Run("Maps deadline to timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := newProvider(server.URL).Purchase(ctx, req)
		assert.ErrorIs(t, err, vtuprovider.ErrTimeout)
	})
}
