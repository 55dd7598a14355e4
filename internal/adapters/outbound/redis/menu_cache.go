// Package redis caches restaurant menus in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// keyValueStore is the subset of the redis client used by the cache.
type keyValueStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// MenuCache implements domain.MenuCache.
type MenuCache struct {
	store  keyValueStore
	prefix string
	ttl    time.Duration
}

// NewMenuCache creates a new MenuCache.
func NewMenuCache(store keyValueStore, prefix string, ttl time.Duration) MenuCache {
	return MenuCache{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (mc MenuCache) key(restaurantID int64) string {
	return fmt.Sprintf("%smenu:%d", mc.prefix, restaurantID)
}

// Get returns the cached menu. A miss is not an error.
func (mc MenuCache) Get(ctx context.Context, restaurantID int64) ([]domain.MenuItem, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("restaurant.id", restaurantID),
	))
	defer span.End()

	raw, err := mc.store.Get(spanCtx, mc.key(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		span.SetAttributes(attribute.Bool("cache.hit", false))
		return nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, fmt.Errorf("decode cached menu: %w", err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", true))
	return items, true, nil
}

// Set stores the menu with the configured TTL.
func (mc MenuCache) Set(ctx context.Context, restaurantID int64, items []domain.MenuItem) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("restaurant.id", restaurantID),
	))
	defer span.End()

	raw, err := json.Marshal(items)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("encode menu: %w", err)
	}

	err = mc.store.Set(spanCtx, mc.key(restaurantID), raw, mc.ttl).Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitMenuCache connects to Redis and registers the MenuCache.
type InitMenuCache struct {
	Logger    *zerolog.Logger `resolve:""`
	Addr      string          `config:"REDIS_ADDR" default:"localhost:6379"`
	Password  string          `config:"REDIS_PASSWORD" default:""`
	DB        int             `config:"REDIS_DB" default:"0"`
	KeyPrefix string          `config:"REDIS_KEY_PREFIX" default:"foodapp:"`
	TTL       time.Duration   `config:"MENU_CACHE_TTL" default:"10m"`
	client    *redis.Client
}

// Initialize creates the client, checks connectivity and registers the cache.
func (i *InitMenuCache) Initialize(ctx context.Context) (context.Context, error) {
	i.client = redis.NewClient(&redis.Options{
		Addr:     i.Addr,
		Password: i.Password,
		DB:       i.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := i.client.Ping(pingCtx).Err(); err != nil {
		return ctx, fmt.Errorf("failed to connect to redis at %s: %w", i.Addr, err)
	}

	depend.Register[domain.MenuCache](NewMenuCache(i.client, i.KeyPrefix, i.TTL))
	return ctx, nil
}

// Close closes the redis client.
func (i *InitMenuCache) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Error().Err(err).Msg("closing redis client")
	}
}
