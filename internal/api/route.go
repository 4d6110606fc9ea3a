package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	v1 "github.com/vtuhub/vtugateway/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, authMiddleware fiber.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	catalog := app.Group("/v1/catalog")
	catalog.Get("/data-plans", handler.DataPlans)
	catalog.Get("/airtime", handler.AirtimeProducts)
	catalog.Get("/cable-packages", handler.CablePackages)
	catalog.Get("/discos", handler.Discos)

	authed := app.Group("/v1", authMiddleware)
	authed.Get("/wallet", handler.GetWallet)
	authed.Post("/wallet/topup", handler.TopUp)
	authed.Post("/purchases", handler.CreatePurchase)
	authed.Get("/transactions", handler.ListTransactions)
}
