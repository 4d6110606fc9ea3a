package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/vtuhub/vtugateway/internal/api"
	v1 "github.com/vtuhub/vtugateway/internal/api/v1"
	"github.com/vtuhub/vtugateway/internal/api/v1/middleware"
	"github.com/vtuhub/vtugateway/internal/api/validator"
	errmw "github.com/vtuhub/vtugateway/internal/error"
	"github.com/vtuhub/vtugateway/internal/mocks"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/service"
	"go.uber.org/zap"
)

type handlerFixture struct {
	app       *fiber.App
	wallets   *mocks.WalletService
	purchases *mocks.PurchaseWorkflowService
}

func newHandlerFixture() *handlerFixture {
	wallets := new(mocks.WalletService)
	purchases := new(mocks.PurchaseWorkflowService)
	transactions := new(mocks.TransactionService)
	catalog := new(mocks.CatalogService)

	handler := v1.NewHandler(zap.NewNop(), wallets, purchases, transactions, catalog,
		validator.NewXValidator(validatorv10.New()))

	app := fiber.New(fiber.Config{ErrorHandler: errmw.ErrorHandler()})
	api.SetupRoutes(app, handler, func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "user-1")
		return c.Next()
	})

	return &handlerFixture{app: app, wallets: wallets, purchases: purchases}
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestHandler_CreatePurchase(t *testing.T) {
	t.Run("Negative amount is rejected before the workflow runs", func(t *testing.T) {
		f := newHandlerFixture()

		resp := postJSON(t, f.app, "/v1/purchases", `{
			"service_type": "airtime",
			"provider": "MTN",
			"amount": -500,
			"recipient_phone": "08031234567",
			"idempotency_key": "key-neg"
		}`)

		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		f.purchases.AssertNotCalled(t, "Purchase", testifymock.Anything, testifymock.Anything)
	})

	t.Run("Missing idempotency key is rejected", func(t *testing.T) {
		f := newHandlerFixture()

		resp := postJSON(t, f.app, "/v1/purchases", `{
			"service_type": "airtime",
			"provider": "MTN",
			"amount": 500,
			"recipient_phone": "08031234567"
		}`)

		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		f.purchases.AssertNotCalled(t, "Purchase", testifymock.Anything, testifymock.Anything)
	})

	t.Run("Malformed body returns 400", func(t *testing.T) {
		f := newHandlerFixture()

		resp := postJSON(t, f.app, "/v1/purchases", `{"amount":`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		f.purchases.AssertNotCalled(t, "Purchase", testifymock.Anything, testifymock.Anything)
	})

	t.Run("Completed purchase returns 201", func(t *testing.T) {
		f := newHandlerFixture()
		f.purchases.On("Purchase", testifymock.Anything, testifymock.Anything).
			Return(service.PurchaseResult{
				TransactionID: 42,
				Reference:     "ref-42",
				Status:        model.TransactionStatusCompleted,
				NewBalance:    4500,
			}, nil)

		resp := postJSON(t, f.app, "/v1/purchases", `{
			"service_type": "airtime",
			"provider": "MTN",
			"amount": 500,
			"recipient_phone": "08031234567",
			"idempotency_key": "key-ok"
		}`)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body v1.PurchaseResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(42), body.TransactionID)
		assert.Equal(t, string(model.TransactionStatusCompleted), body.Status)
		assert.Equal(t, int64(4500), body.NewBalance)
	})

	t.Run("Failed purchase returns 200 with refund pending", func(t *testing.T) {
		f := newHandlerFixture()
		f.purchases.On("Purchase", testifymock.Anything, testifymock.Anything).
			Return(service.PurchaseResult{
				TransactionID: 43,
				Reference:     "ref-43",
				Status:        model.TransactionStatusFailed,
				NewBalance:    4500,
				RefundPending: true,
			}, nil)

		resp := postJSON(t, f.app, "/v1/purchases", `{
			"service_type": "airtime",
			"provider": "MTN",
			"amount": 500,
			"recipient_phone": "08031234567",
			"idempotency_key": "key-fail"
		}`)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body v1.PurchaseResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.RefundPending)
	})
}

func TestHandler_TopUp(t *testing.T) {
	t.Run("Non-positive amount is rejected before the wallet is touched", func(t *testing.T) {
		f := newHandlerFixture()

		resp := postJSON(t, f.app, "/v1/wallet/topup", `{
			"amount": 0,
			"idempotency_key": "topup-1"
		}`)

		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		f.wallets.AssertNotCalled(t, "TopUp", testifymock.Anything, testifymock.Anything)
	})

	t.Run("Valid top-up returns the new balance", func(t *testing.T) {
		f := newHandlerFixture()
		f.wallets.On("TopUp", testifymock.Anything, service.TopUpCommand{
			UserID:         "user-1",
			Amount:         1000,
			IdempotencyKey: "topup-2",
		}).Return(service.WalletResult{UserID: "user-1", Balance: 1000}, nil)

		resp := postJSON(t, f.app, "/v1/wallet/topup", `{
			"amount": 1000,
			"idempotency_key": "topup-2"
		}`)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body v1.WalletResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(1000), body.Balance)
	})
}
