package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"auxite/internal/usecasees"
	"auxite/internal/usecasees/structs"
	"auxite/models"
)

type OrderUC interface {
	Create(ctx context.Context, req *structs.CreateOrderRequest) (*models.Order, error)
	Cancel(ctx context.Context, owner, id string) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error)
	Transactions(orderID string) ([]models.Transaction, error)
	TransactionsByOwner(owner string, limit int) ([]models.Transaction, error)
	SetMarketStatus(asset, status string) error
	Balance(ctx context.Context, owner, asset string) (decimal.Decimal, error)
	Deposit(ctx context.Context, owner, asset string, amount decimal.Decimal) (decimal.Decimal, error)
}

// errMalformedBody marks a request body the parser rejected, before any
// validation ran.
var errMalformedBody = errors.New("malformed request body")

type SweepUC interface {
	Run(ctx context.Context, asset string, ask, bid decimal.Decimal) (*structs.SweepResult, error)
}

type Handler struct {
	fiber *fiber.App

	orderUseCase OrderUC
	sweepUseCase SweepUC

	logger *logrus.Logger
}

func NewHandler(f *fiber.App, orderUC OrderUC, sweepUC SweepUC, l *logrus.Logger) *Handler {
	return &Handler{
		fiber:        f,
		orderUseCase: orderUC,
		sweepUseCase: sweepUC,
		logger:       l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	var req structs.CreateOrderRequest

	if err := c.BodyParser(&req); err != nil {
		return errResponse(c, errMalformedBody)
	}

	o, err := h.orderUseCase.Create(c.UserContext(), &req)
	if err != nil {
		return errResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	owner := c.Query("owner")

	o, err := h.orderUseCase.Cancel(c.UserContext(), owner, id)
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(o)
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	o, err := h.orderUseCase.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(o)
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	owner := c.Query("owner")
	if owner == "" {
		return errResponse(c, usecasees.ErrUnauthorized)
	}

	limit := int64(c.QueryInt("limit", 50))

	out, err := h.orderUseCase.ListByOwner(c.UserContext(), owner, limit)
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(out)
}

func (h *Handler) OrderTransactions(c *fiber.Ctx) error {
	out, err := h.orderUseCase.Transactions(c.Params("id"))
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(out)
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	owner := c.Query("owner")
	if owner == "" {
		return errResponse(c, usecasees.ErrUnauthorized)
	}

	out, err := h.orderUseCase.TransactionsByOwner(owner, c.QueryInt("limit", 50))
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(out)
}

func (h *Handler) SetMarketStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&req); err != nil {
		return errResponse(c, errMalformedBody)
	}

	asset := c.Params("asset")

	if err := h.orderUseCase.SetMarketStatus(asset, req.Status); err != nil {
		return errResponse(c, err)
	}

	return c.JSON(struct {
		Asset  string `json:"asset"`
		Status string `json:"status"`
	}{
		Asset:  asset,
		Status: req.Status,
	})
}

type balanceBody struct {
	Owner   string          `json:"owner"`
	Asset   string          `json:"asset"`
	Balance decimal.Decimal `json:"balance"`
}

func (h *Handler) GetBalance(c *fiber.Ctx) error {
	owner := c.Query("owner")
	if owner == "" {
		return errResponse(c, usecasees.ErrUnauthorized)
	}

	asset := c.Query("asset")

	bal, err := h.orderUseCase.Balance(c.UserContext(), owner, asset)
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(balanceBody{Owner: owner, Asset: asset, Balance: bal})
}

func (h *Handler) Deposit(c *fiber.Ctx) error {
	var req struct {
		Owner  string          `json:"owner"`
		Asset  string          `json:"asset"`
		Amount decimal.Decimal `json:"amount"`
	}

	if err := c.BodyParser(&req); err != nil {
		return errResponse(c, errMalformedBody)
	}

	bal, err := h.orderUseCase.Deposit(c.UserContext(), req.Owner, req.Asset, req.Amount)
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(balanceBody{Owner: req.Owner, Asset: req.Asset, Balance: bal})
}

func (h *Handler) Sweep(c *fiber.Ctx) error {
	var req struct {
		Asset string          `json:"asset"`
		Ask   decimal.Decimal `json:"ask"`
		Bid   decimal.Decimal `json:"bid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return errResponse(c, errMalformedBody)
	}

	res, err := h.sweepUseCase.Run(c.UserContext(), req.Asset, req.Ask, req.Bid)
	if err != nil {
		return errResponse(c, err)
	}

	return c.JSON(res)
}

type errBody struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func errResponse(c *fiber.Ctx, err error) error {
	return c.Status(errStatus(err)).JSON(errBody{
		Code: errCode(err),
		Msg:  err.Error(),
	})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, errMalformedBody),
		errors.Is(err, usecasees.ErrInvalidAmount),
		errors.Is(err, usecasees.ErrInvalidPrice),
		errors.Is(err, usecasees.ErrInvalidSide),
		errors.Is(err, usecasees.ErrUnknownAsset),
		errors.Is(err, usecasees.ErrInvalidStatus),
		errors.Is(err, usecasees.ErrMarketDisabled):
		return fiber.StatusBadRequest
	case errors.Is(err, usecasees.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, usecasees.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecasees.ErrInvalidState),
		errors.Is(err, usecasees.ErrOrderLocked):
		return fiber.StatusConflict
	case errors.Is(err, usecasees.ErrInsufficientBalance),
		errors.Is(err, usecasees.ErrPriceMismatch):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, usecasees.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	}

	return fiber.StatusInternalServerError
}

func errCode(err error) string {
	switch {
	case errors.Is(err, errMalformedBody):
		return "malformed_body"
	case errors.Is(err, usecasees.ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, usecasees.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, usecasees.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, usecasees.ErrInvalidSide):
		return "invalid_side"
	case errors.Is(err, usecasees.ErrUnknownAsset):
		return "unknown_asset"
	case errors.Is(err, usecasees.ErrMarketDisabled):
		return "market_disabled"
	case errors.Is(err, usecasees.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, usecasees.ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, usecasees.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, usecasees.ErrOrderLocked):
		return "order_locked"
	case errors.Is(err, usecasees.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, usecasees.ErrPriceMismatch):
		return "price_mismatch"
	case errors.Is(err, usecasees.ErrStorageUnavailable):
		return "storage_unavailable"
	}

	return "internal"
}
