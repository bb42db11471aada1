package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/logger"
)

// Client is the part of redis.UniversalClient a Cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache is a read-through Redis cache of E in front of another DAO.
type Cache[E dao.Entity] struct {
	client Client
	next   dao.DAO
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	ttl time.Duration
	log *slog.Logger
}

// WithTTL sets the entry lifetime. Zero keeps entries until evicted. The default is 5 minutes.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// NewCache wraps next. prefix namespaces the keys, usually the class name.
func NewCache[E dao.Entity](client Client, next dao.DAO, prefix string, opts ...Option) *Cache[E] {
	o := options{ttl: 5 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[E]{
		client: client,
		next:   next,
		prefix: prefix,
		ttl:    o.ttl,
		log:    logger.OrDiscard(o.log).With(logger.Component("redisstore"), logger.Class(prefix)),
	}
}

// GetByID implements dao.DAO.
func (c *Cache[E]) GetByID(ctx context.Context, id any) (dao.Entity, error) {
	key, err := c.key(id)
	if err != nil {
		return nil, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e E
		decodeErr := json.Unmarshal(data, &e)
		if decodeErr == nil && !dao.IsNil(e) {
			return e, nil
		}
		c.log.WarnContext(ctx, "dropping undecodable cache entry", logger.Error(decodeErr))
		_ = c.client.Del(ctx, key).Err()
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache read failed", logger.Error(err))
	}

	e, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dao.IsNil(e) {
		return nil, fmt.Errorf("%w: %v", dao.ErrNotFound, id)
	}

	if data, err := json.Marshal(e); err != nil {
		c.log.WarnContext(ctx, "cache encode failed", logger.Error(err))
	} else if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache write failed", logger.Error(err))
	}
	return e, nil
}

// Forget removes the cached entry of id.
func (c *Cache[E]) Forget(ctx context.Context, id any) error {
	key, err := c.key(id)
	if err != nil {
		return err
	}
	return c.client.Del(ctx, key).Err()
}

// Unwrap returns the wrapped DAO so named lookups can be resolved on it.
func (c *Cache[E]) Unwrap() dao.DAO {
	return c.next
}

func (c *Cache[E]) key(id any) (string, error) {
	s, err := dao.StringID(id)
	if err != nil {
		return "", err
	}
	return c.prefix + ":" + s, nil
}
