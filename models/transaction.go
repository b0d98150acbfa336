package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TxKindFill         = "fill"
	TxKindCancelRefund = "cancel_refund"
	TxKindExpireRefund = "expire_refund"
)

// Transaction is one append-only settlement log entry linking a balance
// movement back to its order.
type Transaction struct {
	ID              string          `db:"id"`
	OrderID         string          `db:"order_id"`
	Owner           string          `db:"owner"`
	Kind            string          `db:"kind"`
	Asset           string          `db:"asset"`
	Quantity        decimal.Decimal `db:"quantity"`
	SettlementAsset string          `db:"settlement_asset"`
	Amount          decimal.Decimal `db:"amount"`
	ExecutionPrice  decimal.Decimal `db:"execution_price"`
	SettlementRef   string          `db:"settlement_ref"`
	CreatedAt       time.Time       `db:"created_at"`
}
