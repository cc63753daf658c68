package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyRevokedTokenPrefix = "cboard:token:revoked:"

// TokenDenylist remembers logged-out session tokens by jti until they
// would have expired anyway.
type TokenDenylist struct {
	rdb     redis.UniversalClient
	timeout time.Duration
}

func NewTokenDenylist(rdb redis.UniversalClient) *TokenDenylist {
	return &TokenDenylist{rdb: rdb, timeout: operTimeout()}
}

func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	err := d.rdb.Set(ctx, keyRevokedTokenPrefix+jti, 1, ttl).Err()
	return errors.Wrap(err, "redis: Revoke")
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	n, err := d.rdb.Exists(ctx, keyRevokedTokenPrefix+jti).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis: IsRevoked")
	}
	return n > 0, nil
}

func (d *TokenDenylist) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
