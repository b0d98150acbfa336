package structs

import (
	"github.com/shopspring/decimal"

	"auxite/models"
)

type CreateOrderRequest struct {
	Owner           string           `json:"owner"`
	Side            models.OrderSide `json:"side"`
	Asset           string           `json:"asset"`
	Quantity        decimal.Decimal  `json:"quantity"`
	LimitPrice      decimal.Decimal  `json:"limit_price"`
	SettlementAsset string           `json:"settlement_asset"`
	ExpiresInDays   int              `json:"expires_in_days"`
}

type SweepResult struct {
	FilledCount int      `json:"filled_count"`
	Errors      []string `json:"errors"`
}

type Quote struct {
	Asset string          `json:"asset"`
	Ask   decimal.Decimal `json:"ask"`
	Bid   decimal.Decimal `json:"bid"`
}
