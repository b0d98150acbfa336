package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusExpired         OrderStatus = "expired"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCancelled || s == OrderStatusExpired
}

// Order is a standing instruction to buy or sell a quantity of a metal
// at or better than LimitPrice, settled in SettlementAsset.
// LockedAmount is the settlement balance debited at creation for buy
// orders with an internal settlement asset; it is released exactly once
// via fill, cancel or expiry.
type Order struct {
	ID              string          `json:"id"`
	Owner           string          `json:"owner"`
	Side            OrderSide       `json:"side"`
	Asset           string          `json:"asset"`
	Quantity        decimal.Decimal `json:"quantity"`
	LimitPrice      decimal.Decimal `json:"limit_price"`
	SettlementAsset string          `json:"settlement_asset"`
	Status          OrderStatus     `json:"status"`
	FilledQuantity  decimal.Decimal `json:"filled_quantity"`
	LockedAmount    decimal.Decimal `json:"locked_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	FilledAt        *time.Time      `json:"filled_at,omitempty"`
	ExecutionPrice  decimal.Decimal `json:"execution_price"`
	SettlementRef   string          `json:"settlement_ref,omitempty"`
}

func (o *Order) Remaining() decimal.Decimal {
	return o.Quantity.Sub(o.FilledQuantity)
}

func (o *Order) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
