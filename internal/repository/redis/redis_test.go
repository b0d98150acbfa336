package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"auxite/models"
)

func testConn(t *testing.T) *goredis.Client {
	srv := miniredis.RunT(t)

	return goredis.NewClient(&goredis.Options{
		Addr: srv.Addr(),
	})
}

func testOrder(id, owner string, side models.OrderSide, limit string) *models.Order {
	now := time.Now().UTC().Truncate(time.Second)

	return &models.Order{
		ID:              id,
		Owner:           owner,
		Side:            side,
		Asset:           models.AUXG,
		Quantity:        decimal.RequireFromString("10"),
		LimitPrice:      decimal.RequireFromString(limit),
		SettlementAsset: models.AUXM,
		Status:          models.OrderStatusPending,
		FilledQuantity:  decimal.Zero,
		LockedAmount:    decimal.Zero,
		CreatedAt:       now,
		ExpiresAt:       now.Add(24 * time.Hour),
		UpdatedAt:       now,
	}
}

func Test_OrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		repo := NewOrderRepository(testConn(t))

		o := testOrder("ord-1", "0xaaa", models.SideBuy, "95")
		assert.NoError(t, repo.Create(ctx, o))

		got, err := repo.GetByID(ctx, "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
		assert.Equal(t, o.Owner, got.Owner)
		assert.True(t, got.LimitPrice.Equal(o.LimitPrice))
		assert.Equal(t, models.OrderStatusPending, got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := NewOrderRepository(testConn(t))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner list is most recent first", func(t *testing.T) {
		repo := NewOrderRepository(testConn(t))

		assert.NoError(t, repo.Create(ctx, testOrder("ord-1", "0xaaa", models.SideBuy, "95")))
		assert.NoError(t, repo.Create(ctx, testOrder("ord-2", "0xaaa", models.SideBuy, "96")))
		assert.NoError(t, repo.Create(ctx, testOrder("ord-3", "0xbbb", models.SideBuy, "97")))

		out, err := repo.ListByOwner(ctx, "0xaaa", 0)
		assert.NoError(t, err)
		assert.Len(t, out, 2)
		assert.Equal(t, "ord-2", out[0].ID)
		assert.Equal(t, "ord-1", out[1].ID)
	})

	t.Run("pending index orders buys by descending limit", func(t *testing.T) {
		repo := NewOrderRepository(testConn(t))

		assert.NoError(t, repo.Create(ctx, testOrder("low", "0xaaa", models.SideBuy, "90")))
		assert.NoError(t, repo.Create(ctx, testOrder("high", "0xaaa", models.SideBuy, "97")))
		assert.NoError(t, repo.Create(ctx, testOrder("mid", "0xaaa", models.SideBuy, "95")))

		ids, err := repo.PendingByAsset(ctx, models.AUXG, models.SideBuy)
		assert.NoError(t, err)
		assert.Equal(t, []string{"high", "mid", "low"}, ids)
	})

	t.Run("pending index orders sells by ascending limit", func(t *testing.T) {
		repo := NewOrderRepository(testConn(t))

		assert.NoError(t, repo.Create(ctx, testOrder("high", "0xaaa", models.SideSell, "97")))
		assert.NoError(t, repo.Create(ctx, testOrder("low", "0xaaa", models.SideSell, "90")))

		ids, err := repo.PendingByAsset(ctx, models.AUXG, models.SideSell)
		assert.NoError(t, err)
		assert.Equal(t, []string{"low", "high"}, ids)
	})

	t.Run("create with debit reserves funds and persists together", func(t *testing.T) {
		conn := testConn(t)
		repo := NewOrderRepository(conn)
		balances := NewBalanceRepository(conn)

		_, err := balances.Adjust(ctx, "0xaaa", models.AUXM, decimal.RequireFromString("1000"))
		assert.NoError(t, err)

		o := testOrder("ord-1", "0xaaa", models.SideBuy, "95")
		o.LockedAmount = decimal.RequireFromString("950")

		assert.NoError(t, repo.CreateWithDebit(ctx, o, BalanceChange{
			Owner: "0xaaa",
			Asset: models.AUXM,
			Delta: decimal.RequireFromString("-950"),
		}))

		bal, err := balances.Get(ctx, "0xaaa", models.AUXM)
		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("50")))

		got, err := repo.GetByID(ctx, "ord-1")
		assert.NoError(t, err)
		assert.True(t, got.LockedAmount.Equal(decimal.RequireFromString("950")))

		ids, err := repo.PendingByAsset(ctx, models.AUXG, models.SideBuy)
		assert.NoError(t, err)
		assert.Equal(t, []string{"ord-1"}, ids)
	})

	t.Run("create with debit past zero writes nothing", func(t *testing.T) {
		conn := testConn(t)
		repo := NewOrderRepository(conn)
		balances := NewBalanceRepository(conn)

		_, err := balances.Adjust(ctx, "0xaaa", models.AUXM, decimal.RequireFromString("100"))
		assert.NoError(t, err)

		o := testOrder("ord-1", "0xaaa", models.SideBuy, "95")

		err = repo.CreateWithDebit(ctx, o, BalanceChange{
			Owner: "0xaaa",
			Asset: models.AUXM,
			Delta: decimal.RequireFromString("-950"),
		})
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		bal, err := balances.Get(ctx, "0xaaa", models.AUXM)
		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("100")))

		_, err = repo.GetByID(ctx, "ord-1")
		assert.ErrorIs(t, err, ErrNotFound)

		ids, err := repo.PendingByAsset(ctx, models.AUXG, models.SideBuy)
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("update rewrites the body and keeps the indexes", func(t *testing.T) {
		repo := NewOrderRepository(testConn(t))

		o := testOrder("ord-1", "0xaaa", models.SideBuy, "95")
		assert.NoError(t, repo.Create(ctx, o))

		o.SettlementRef = "0xref"
		assert.NoError(t, repo.Update(ctx, o))

		got, err := repo.GetByID(ctx, "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, "0xref", got.SettlementRef)

		ids, err := repo.PendingByAsset(ctx, models.AUXG, models.SideBuy)
		assert.NoError(t, err)
		assert.Equal(t, []string{"ord-1"}, ids)
	})

	t.Run("finalize drops indices and applies refunds atomically", func(t *testing.T) {
		conn := testConn(t)
		repo := NewOrderRepository(conn)
		balances := NewBalanceRepository(conn)

		o := testOrder("ord-1", "0xaaa", models.SideBuy, "95")
		assert.NoError(t, repo.Create(ctx, o))

		o.Status = models.OrderStatusCancelled
		assert.NoError(t, repo.Finalize(ctx, o, BalanceChange{
			Owner: "0xaaa",
			Asset: models.AUXM,
			Delta: decimal.RequireFromString("950.50"),
		}))

		got, err := repo.GetByID(ctx, "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, got.Status)

		ids, err := repo.PendingByAsset(ctx, models.AUXG, models.SideBuy)
		assert.NoError(t, err)
		assert.Empty(t, ids)

		all, err := repo.PendingAll(ctx)
		assert.NoError(t, err)
		assert.Empty(t, all)

		bal, err := balances.Get(ctx, "0xaaa", models.AUXM)
		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("950.50")))
	})
}

func Test_BalanceRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("zero for an unknown account", func(t *testing.T) {
		repo := NewBalanceRepository(testConn(t))

		bal, err := repo.Get(ctx, "0xaaa", models.AUXM)
		assert.NoError(t, err)
		assert.True(t, bal.IsZero())
	})

	t.Run("adjust is cumulative and keeps six decimal places", func(t *testing.T) {
		repo := NewBalanceRepository(testConn(t))

		bal, err := repo.Adjust(ctx, "0xaaa", models.AUXM, decimal.RequireFromString("100.123456"))
		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("100.123456")))

		bal, err = repo.Adjust(ctx, "0xaaa", models.AUXM, decimal.RequireFromString("-50.5"))
		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("49.623456")))

		bal, err = repo.Get(ctx, "0xaaa", models.AUXM)
		assert.NoError(t, err)
		assert.True(t, bal.Equal(decimal.RequireFromString("49.623456")))
	})

	t.Run("debit below zero is visible to the caller", func(t *testing.T) {
		repo := NewBalanceRepository(testConn(t))

		bal, err := repo.Adjust(ctx, "0xaaa", models.AUXM, decimal.RequireFromString("-10"))
		assert.NoError(t, err)
		assert.True(t, bal.IsNegative())
	})
}

func Test_LockRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire is rejected until release", func(t *testing.T) {
		repo := NewLockRepository(testConn(t))

		token, err := repo.Acquire(ctx, "ord-1", time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = repo.Acquire(ctx, "ord-1", time.Minute)
		assert.ErrorIs(t, err, ErrLocked)

		assert.NoError(t, repo.Release(ctx, "ord-1", token))

		_, err = repo.Acquire(ctx, "ord-1", time.Minute)
		assert.NoError(t, err)
	})

	t.Run("release with a stale token keeps the lock", func(t *testing.T) {
		repo := NewLockRepository(testConn(t))

		token, err := repo.Acquire(ctx, "ord-1", time.Minute)
		assert.NoError(t, err)

		assert.NoError(t, repo.Release(ctx, "ord-1", "stale-token"))

		_, err = repo.Acquire(ctx, "ord-1", time.Minute)
		assert.ErrorIs(t, err, ErrLocked)

		assert.NoError(t, repo.Release(ctx, "ord-1", token))
	})

	t.Run("locks are per order", func(t *testing.T) {
		repo := NewLockRepository(testConn(t))

		_, err := repo.Acquire(ctx, "ord-1", time.Minute)
		assert.NoError(t, err)

		_, err = repo.Acquire(ctx, "ord-2", time.Minute)
		assert.NoError(t, err)
	})
}
