package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vtuhub/vtugateway/internal/api/v1/middleware"
	"github.com/vtuhub/vtugateway/internal/api/validator"
	"github.com/vtuhub/vtugateway/internal/constants"
	"github.com/vtuhub/vtugateway/internal/model"
	"github.com/vtuhub/vtugateway/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger       *zap.Logger
	wallets      service.WalletService
	purchases    service.PurchaseWorkflowService
	transactions service.TransactionService
	catalog      service.CatalogService
	validator    validator.IXValidator
}

func NewHandler(logger *zap.Logger, wallets service.WalletService, purchases service.PurchaseWorkflowService,
	transactions service.TransactionService, catalog service.CatalogService, validator validator.IXValidator) *Handler {
	return &Handler{
		logger:       logger,
		wallets:      wallets,
		purchases:    purchases,
		transactions: transactions,
		catalog:      catalog,
		validator:    validator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) GetWallet(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	balance, err := h.wallets.GetBalance(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(WalletResponse{UserID: userID, Balance: balance})
}

func (h *Handler) TopUp(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var request TopUpRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return invalidBody(c)
	}

	if errs := h.validator.Validate(&request); len(errs) > 0 {
		return h.validationFailed(c, errs)
	}

	result, err := h.wallets.TopUp(c.UserContext(), service.TopUpCommand{
		UserID:         userID,
		Amount:         request.Amount,
		IdempotencyKey: request.IdempotencyKey,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Top-up accepted",
		zap.String("userID", userID),
		zap.Int64("amount", request.Amount))

	return c.JSON(WalletResponse{UserID: result.UserID, Balance: result.Balance})
}

func (h *Handler) CreatePurchase(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var request PurchaseRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return invalidBody(c)
	}

	if errs := h.validator.Validate(&request); len(errs) > 0 {
		return h.validationFailed(c, errs)
	}

	result, err := h.purchases.Purchase(c.UserContext(), service.PurchaseCommand{
		UserID:         userID,
		ServiceType:    model.ServiceType(request.ServiceType),
		Provider:       request.Provider,
		Amount:         request.Amount,
		Recipient:      request.RecipientPhone,
		ProductName:    request.ProductName,
		IdempotencyKey: request.IdempotencyKey,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Purchase processed",
		zap.String("userID", userID),
		zap.String("reference", result.Reference),
		zap.String("status", string(result.Status)))

	status := fiber.StatusCreated
	if result.Status == model.TransactionStatusFailed {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(PurchaseResponse{
		TransactionID: result.TransactionID,
		Reference:     result.Reference,
		Status:        string(result.Status),
		NewBalance:    result.NewBalance,
		RefundPending: result.RefundPending,
	})
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	result, err := h.transactions.List(c.UserContext(), service.ListTransactionsCommand{
		UserID: userID,
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	})
	if err != nil {
		return err
	}

	transactions := make([]TransactionResponse, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, toTransactionResponse(tx))
	}

	return c.JSON(TransactionListResponse{Transactions: transactions, Total: result.Total})
}

func (h *Handler) DataPlans(c *fiber.Ctx) error {
	network := model.NetworkProvider(c.Query("network"))

	plans, err := h.catalog.DataPlans(c.UserContext(), network)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data_plans": plans})
}

func (h *Handler) AirtimeProducts(c *fiber.Ctx) error {
	products, err := h.catalog.AirtimeProducts(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"airtime_products": products})
}

func (h *Handler) CablePackages(c *fiber.Ctx) error {
	packages, err := h.catalog.CablePackages(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"cable_packages": packages})
}

func (h *Handler) Discos(c *fiber.Ctx) error {
	discos, err := h.catalog.Discos(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"discos": discos})
}

func (h *Handler) validationFailed(c *fiber.Ctx, errs []validator.Error) error {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.FailedField)
	}

	h.logger.Warn("Request validation failed", zap.Strings("fields", fields))

	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":    constants.ErrCodeValidationFailed,
		"message": constants.GetErrorMessage(constants.ErrCodeValidationFailed) + ": " + strings.Join(fields, ", "),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}
