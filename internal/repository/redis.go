package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"accorcia/internal/config"
	"accorcia/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// LinkKeyPrefix prefixes cached link records
	LinkKeyPrefix = "link:"
	// DefaultLinkCacheTTL is used when no TTL is configured
	DefaultLinkCacheTTL = 10 * time.Minute
)

// RedisRepository handles Redis operations: the link cache and visit pub/sub
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig, ttl time.Duration) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return NewRedisRepositoryWithClient(rdb, ttl)
}

// NewRedisRepositoryWithClient wraps an existing client
func NewRedisRepositoryWithClient(client *redis.Client, ttl time.Duration) *RedisRepository {
	if ttl <= 0 {
		ttl = DefaultLinkCacheTTL
	}
	return &RedisRepository{client: client, ttl: ttl}
}

// CacheLink stores a link record under its short code
func (r *RedisRepository) CacheLink(ctx context.Context, l *model.Link) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.linkKey(l.ShortCode), data, r.ttl).Err()
}

// GetCachedLink returns the cached link record, or ErrNotFound on a miss
func (r *RedisRepository) GetCachedLink(ctx context.Context, shortCode string) (*model.Link, error) {
	data, err := r.client.Get(ctx, r.linkKey(shortCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var l model.Link
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// EvictLink removes a cached link record
func (r *RedisRepository) EvictLink(ctx context.Context, shortCode string) error {
	return r.client.Del(ctx, r.linkKey(shortCode)).Err()
}

// PublishVisit publishes a visit event on the link's channel
func (r *RedisRepository) PublishVisit(ctx context.Context, topic string, evt *model.VisitEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, topic, data).Err()
}

// SubscribeVisits subscribes to every link channel
func (r *RedisRepository) SubscribeVisits(ctx context.Context) *redis.PubSub {
	return r.client.PSubscribe(ctx, model.TopicPrefix+"*")
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) linkKey(shortCode string) string {
	return LinkKeyPrefix + shortCode
}
