package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(f *fiber.App, orderUC OrderUC, sweepUC SweepUC, l *logrus.Logger) {
	h := NewHandler(f, orderUC, sweepUC, l)

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)

	v1 := router.Group("v1")
	v1.Post("/orders", h.CreateOrder)
	v1.Get("/orders", h.ListOrders)
	v1.Get("/orders/:id", h.GetOrder)
	v1.Get("/orders/:id/transactions", h.OrderTransactions)
	v1.Delete("/orders/:id", h.CancelOrder)
	v1.Get("/transactions", h.ListTransactions)
	v1.Get("/balances", h.GetBalance)
	v1.Post("/balances", h.Deposit)
	v1.Put("/markets/:asset", h.SetMarketStatus)
	v1.Post("/sweep", h.Sweep)
}
