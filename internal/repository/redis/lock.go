package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

var ErrLocked = errors.New("order is locked")

// releaseScript deletes the lock only when the caller still holds it.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// LockRepository is a short-lived per-order lock wrapping every lifecycle
// transition, so two concurrent cancel/fill attempts cannot both see the
// order as pending.
type LockRepository struct {
	conn *goredis.Client
}

func NewLockRepository(conn *goredis.Client) LockRepo {
	return &LockRepository{
		conn: conn,
	}
}

func (r *LockRepository) Acquire(ctx context.Context, id string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	ok, err := r.conn.SetNX(ctx, lockKey(id), token, ttl).Result()
	if err != nil {
		return "", errors.Wrap(err, "acquire lock")
	}
	if !ok {
		return "", ErrLocked
	}

	return token, nil
}

func (r *LockRepository) Release(ctx context.Context, id, token string) error {
	if err := r.conn.Eval(ctx, releaseScript, []string{lockKey(id)}, token).Err(); err != nil {
		return errors.Wrap(err, "release lock")
	}

	return nil
}
