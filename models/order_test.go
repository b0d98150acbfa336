package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_OrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusPartiallyFilled.IsTerminal())
	assert.True(t, OrderStatusFilled.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.True(t, OrderStatusExpired.IsTerminal())
}

func Test_Order_Remaining(t *testing.T) {
	o := Order{
		Quantity:       decimal.RequireFromString("10"),
		FilledQuantity: decimal.RequireFromString("3.5"),
	}

	assert.True(t, o.Remaining().Equal(decimal.RequireFromString("6.5")))
}

func Test_Order_IsExpired(t *testing.T) {
	now := time.Now()

	o := Order{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, o.IsExpired(now))
	assert.True(t, o.IsExpired(now.Add(2*time.Minute)))
}

func Test_AssetTables(t *testing.T) {
	t.Run("trade assets", func(t *testing.T) {
		for _, sym := range []string{AUXG, AUXS, AUXPT, AUXPD} {
			a, ok := TradeAsset(sym)
			assert.True(t, ok, sym)
			assert.True(t, a.OnChain, sym)
			assert.True(t, a.Tradable, sym)
		}

		_, ok := TradeAsset(AUXM)
		assert.False(t, ok)

		_, ok = TradeAsset("XAU")
		assert.False(t, ok)
	})

	t.Run("settlement assets", func(t *testing.T) {
		a, ok := SettlementAsset(AUXM)
		assert.True(t, ok)
		assert.False(t, a.OnChain)

		a, ok = SettlementAsset(USDC)
		assert.True(t, ok)
		assert.True(t, a.OnChain)

		_, ok = SettlementAsset(AUXG)
		assert.False(t, ok)
	})
}
