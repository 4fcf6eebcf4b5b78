package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redisClient "github.com/go-redis/redis/v8"
)

// Cache is a TTL byte cache backed by redis. It satisfies lyrics.Cache.
type Cache struct {
	client *redisClient.Client
	prefix string
}

// NewCache connects to url. A bare host:port is dialed over TLS as the
// default user with password, matching hosted redis URLs; a full redis:// or
// rediss:// URL is used as given, with password filling in a missing one.
func NewCache(url, password string) (*Cache, error) {
	opt, err := parseOptions(url, password)
	if err != nil {
		return nil, err
	}
	return &Cache{client: redisClient.NewClient(opt), prefix: "periodiclyrics:"}, nil
}

func parseOptions(url, password string) (*redisClient.Options, error) {
	if url == "" {
		return nil, errors.New("redis url is empty")
	}
	if !strings.Contains(url, "://") {
		url = fmt.Sprintf("rediss://default:%s@%s", password, url)
	}
	opt, err := redisClient.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if opt.Password == "" {
		opt.Password = password
	}
	return opt, nil
}

// Ping checks the connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the cached value, or nil without error on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

// Set stores value for ttl. A zero ttl keeps the value until deleted.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
