package redisthrottle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"remedios-api/internal/domain/users"
)

const keyLoginFailures = "%s:login_failures:%s"

type Options struct {
	MaxAttempts int
	Window      time.Duration
	// Prefix separa keys entre entornos que comparten redis.
	Prefix string
}

// Throttle cuenta fallos de login por username en ventanas fijas.
// La ventana arranca con el primer fallo; al vencer la key, el contador vuelve a cero.
type Throttle struct {
	rdb  redis.UniversalClient
	opts Options
}

func New(rdb redis.UniversalClient, opts Options) (*Throttle, error) {
	if rdb == nil {
		return nil, errors.New("redisthrottle: redis client required")
	}
	if opts.MaxAttempts <= 0 {
		return nil, errors.New("redisthrottle: max attempts must be > 0")
	}
	if opts.Window <= 0 {
		return nil, errors.New("redisthrottle: window must be > 0")
	}
	if strings.TrimSpace(opts.Prefix) == "" {
		opts.Prefix = "remedios"
	}
	return &Throttle{rdb: rdb, opts: opts}, nil
}

func (t *Throttle) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := t.rdb.Get(ctx, t.key(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redisthrottle: get: %w", err)
	}
	return n >= int64(t.opts.MaxAttempts), nil
}

func (t *Throttle) Fail(ctx context.Context, username string) (int64, error) {
	key := t.key(username)

	n, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redisthrottle: incr: %w", err)
	}
	if n == 1 {
		if err := t.rdb.Expire(ctx, key, t.opts.Window).Err(); err != nil {
			return n, fmt.Errorf("redisthrottle: expire: %w", err)
		}
	}
	return n, nil
}

func (t *Throttle) Reset(ctx context.Context, username string) error {
	if err := t.rdb.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("redisthrottle: del: %w", err)
	}
	return nil
}

func (t *Throttle) key(username string) string {
	return fmt.Sprintf(keyLoginFailures, t.opts.Prefix, strings.TrimSpace(username))
}

var _ users.Throttle = (*Throttle)(nil)
