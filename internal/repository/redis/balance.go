package redis

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Balances are stored as int64 micro-units so INCRBY stays atomic and
// exact. Amounts below one micro-unit are truncated at this boundary.
const microExp = 6

func toMicros(d decimal.Decimal) int64 {
	return d.Shift(microExp).IntPart()
}

func fromMicros(v int64) decimal.Decimal {
	return decimal.New(v, -microExp)
}

type BalanceRepository struct {
	conn *goredis.Client
}

func NewBalanceRepository(conn *goredis.Client) BalanceRepo {
	return &BalanceRepository{
		conn: conn,
	}
}

func (r *BalanceRepository) Get(ctx context.Context, owner, asset string) (decimal.Decimal, error) {
	raw, err := r.conn.Get(ctx, balanceKey(owner, asset)).Result()
	if err != nil {
		if err == goredis.Nil {
			return decimal.Zero, nil
		}
		return decimal.Zero, errors.Wrap(err, "get balance")
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "parse balance")
	}

	return fromMicros(v), nil
}

func (r *BalanceRepository) Adjust(ctx context.Context, owner, asset string, delta decimal.Decimal) (decimal.Decimal, error) {
	v, err := r.conn.IncrBy(ctx, balanceKey(owner, asset), toMicros(delta)).Result()
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "adjust balance")
	}

	return fromMicros(v), nil
}
