package redis

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"auxite/models"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// createScript debits the settlement balance and persists the order with
// its indexes only when the balance stays non-negative, so a crash can
// never strand a debit without an order.
const createScript = `local bal = redis.call("incrby", KEYS[1], ARGV[1])
if bal < 0 then
	redis.call("incrby", KEYS[1], -tonumber(ARGV[1]))
	return 0
end
redis.call("set", KEYS[2], ARGV[2])
redis.call("lpush", KEYS[3], ARGV[3])
redis.call("zadd", KEYS[4], ARGV[4], ARGV[3])
redis.call("sadd", KEYS[5], ARGV[3])
return 1`

type OrderRepository struct {
	conn *goredis.Client
}

func NewOrderRepository(conn *goredis.Client) OrderRepo {
	return &OrderRepository{
		conn: conn,
	}
}

// Create persists the order and adds it to the owner list, the per-asset
// pending price index and the global pending set in one MULTI.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}

	price, _ := o.LimitPrice.Float64()

	pipe := r.conn.TxPipeline()
	pipe.Set(ctx, orderKey(o.ID), body, 0)
	pipe.LPush(ctx, ownerIndexKey(o.Owner), o.ID)
	pipe.ZAdd(ctx, pendingIndexKey(o.Asset, o.Side), goredis.Z{
		Score:  price,
		Member: o.ID,
	})
	pipe.SAdd(ctx, pendingAllKey, o.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "create order")
	}

	return nil
}

// CreateWithDebit reserves the settlement funds and persists the order
// in one script. Returns ErrInsufficientFunds when the debit would take
// the balance below zero; nothing is written in that case.
func (r *OrderRepository) CreateWithDebit(ctx context.Context, o *models.Order, debit BalanceChange) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}

	price, _ := o.LimitPrice.Float64()

	keys := []string{
		balanceKey(debit.Owner, debit.Asset),
		orderKey(o.ID),
		ownerIndexKey(o.Owner),
		pendingIndexKey(o.Asset, o.Side),
		pendingAllKey,
	}

	res, err := r.conn.Eval(ctx, createScript, keys, toMicros(debit.Delta), body, o.ID, price).Int()
	if err != nil {
		return errors.Wrap(err, "create order")
	}

	if res == 0 {
		return ErrInsufficientFunds
	}

	return nil
}

// Update rewrites the order body without touching the indexes.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}

	if err := r.conn.Set(ctx, orderKey(o.ID), body, 0).Err(); err != nil {
		return errors.Wrap(err, "update order")
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	body, err := r.conn.Get(ctx, orderKey(id)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get order")
	}

	var o models.Order
	if err := json.Unmarshal(body, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *OrderRepository) ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	ids, err := r.conn.LRange(ctx, ownerIndexKey(owner), 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	out := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.GetByID(ctx, id)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return nil, err
		}
		out = append(out, *o)
	}

	return out, nil
}

// PendingByAsset returns pending order ids most aggressive limit first:
// highest price for buys, lowest for sells.
func (r *OrderRepository) PendingByAsset(ctx context.Context, asset string, side models.OrderSide) ([]string, error) {
	key := pendingIndexKey(asset, side)

	var ids []string
	var err error

	switch side {
	case models.SideBuy:
		ids, err = r.conn.ZRevRange(ctx, key, 0, -1).Result()
	default:
		ids, err = r.conn.ZRange(ctx, key, 0, -1).Result()
	}

	if err != nil {
		return nil, errors.Wrap(err, "pending index")
	}

	return ids, nil
}

func (r *OrderRepository) PendingAll(ctx context.Context) ([]string, error) {
	ids, err := r.conn.SMembers(ctx, pendingAllKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "pending set")
	}

	return ids, nil
}

// Finalize writes the order in its new status, drops it from the pending
// indices and applies the balance changes, all in one MULTI so funds and
// status move together.
func (r *OrderRepository) Finalize(ctx context.Context, o *models.Order, changes ...BalanceChange) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}

	pipe := r.conn.TxPipeline()
	pipe.Set(ctx, orderKey(o.ID), body, 0)
	pipe.ZRem(ctx, pendingIndexKey(o.Asset, o.Side), o.ID)
	pipe.SRem(ctx, pendingAllKey, o.ID)

	for _, c := range changes {
		pipe.IncrBy(ctx, balanceKey(c.Owner, c.Asset), toMicros(c.Delta))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "finalize order")
	}

	return nil
}
