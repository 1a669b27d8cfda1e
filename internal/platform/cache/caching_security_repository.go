// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"market_dashboard/internal/feature/securities/domain/entity"
	"market_dashboard/internal/feature/securities/usecase"
)

// CachingSecurityRepository decorates a SecurityRepository with Redis caching.
// Securities are seeded once and never mutated, so entries only expire by TTL
// or through Invalidate.
type CachingSecurityRepository struct {
	inner     usecase.SecurityRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SecurityRepository = (*CachingSecurityRepository)(nil)

// NewCachingSecurityRepository decorates a SecurityRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "securities".
// A nil rdb disables caching.
func NewCachingSecurityRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SecurityRepository, namespace string) *CachingSecurityRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "securities"
	}
	return &CachingSecurityRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListSecurities returns all securities, checking the cache first.
func (c *CachingSecurityRepository) ListSecurities(ctx context.Context) ([]entity.Security, error) {
	if c.rdb == nil {
		return c.inner.ListSecurities(ctx)
	}

	key := c.listKey()
	var out []entity.Security
	if c.get(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.ListSecurities(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// GetSecurity returns one security, checking the cache first. Absent ids are not cached.
func (c *CachingSecurityRepository) GetSecurity(ctx context.Context, id string) (entity.Security, bool, error) {
	if c.rdb == nil {
		return c.inner.GetSecurity(ctx, id)
	}

	key := c.itemKey(id)
	var sec entity.Security
	if c.get(ctx, key, &sec) {
		return sec, true, nil
	}

	sec, found, err := c.inner.GetSecurity(ctx, id)
	if err != nil || !found {
		return sec, found, err
	}
	c.set(ctx, key, sec)
	return sec, true, nil
}

// Invalidate removes every cached entry in the namespace.
func (c *CachingSecurityRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// get reads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingSecurityRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v under key (best effort).
func (c *CachingSecurityRepository) set(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

func (c *CachingSecurityRepository) listKey() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

func (c *CachingSecurityRepository) itemKey(id string) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, safe(id))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingSecurityRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
