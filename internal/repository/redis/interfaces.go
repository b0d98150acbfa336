package redis

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"auxite/models"
)

//go:generate mockery --case=snake --name=OrderRepo
//go:generate mockery --case=snake --name=BalanceRepo
//go:generate mockery --case=snake --name=LockRepo

// BalanceChange is an internal-balance delta applied atomically with an
// order transition.
type BalanceChange struct {
	Owner string
	Asset string
	Delta decimal.Decimal
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	CreateWithDebit(ctx context.Context, o *models.Order, debit BalanceChange) error
	Update(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error)
	PendingByAsset(ctx context.Context, asset string, side models.OrderSide) ([]string, error)
	PendingAll(ctx context.Context) ([]string, error)
	Finalize(ctx context.Context, o *models.Order, changes ...BalanceChange) error
}

type BalanceRepo interface {
	Get(ctx context.Context, owner, asset string) (decimal.Decimal, error)
	Adjust(ctx context.Context, owner, asset string, delta decimal.Decimal) (decimal.Decimal, error)
}

type LockRepo interface {
	Acquire(ctx context.Context, id string, ttl time.Duration) (string, error)
	Release(ctx context.Context, id, token string) error
}
