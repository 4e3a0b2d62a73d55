// Copyright (c) 2026 Coursia. All rights reserved.

package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/constants"
)

// catalogCacheTTL bounds how stale a cached catalogue page may get even
// without an explicit invalidation.
const catalogCacheTTL = 5 * time.Minute

// RedisCache implements the [Cache] interface using Redis.
//
// # Invalidation
//
// Pages are stored under a versioned key. Invalidate bumps the version
// counter, which orphans every previously cached page at once; the orphans
// expire on their own TTL. This avoids scanning for page keys on mutation.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed catalogue cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// cachedPage is the stored JSON payload for one catalogue page.
type cachedPage struct {
	Courses []*Course `json:"courses"`
	Total   int       `json:"total"`
}

func (cache *RedisCache) versionKey() string {
	return constants.RedisPrefixCatalog + "version"
}

func (cache *RedisCache) pageKey(version string, page, limit int) string {
	return fmt.Sprintf("%sv%s:page:%d:limit:%d", constants.RedisPrefixCatalog, version, page, limit)
}

/*
GetPage returns a cached catalogue page.

Description: Resolves the current version counter first; a missing version or
page key yields apperr.NotFound so the caller falls through to the repository.

Parameters:
  - context: context.Context
  - page: int
  - limit: int

Returns:
  - []*Course: Cached page
  - int: Total course count at caching time
  - error: apperr.NotFound on a miss, or connectivity errors
*/
func (cache *RedisCache) GetPage(context context.Context, page, limit int) ([]*Course, int, error) {
	version, err := cache.client.Get(context, cache.versionKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, apperr.NotFound("Catalogue page")
		}
		return nil, 0, fmt.Errorf("redis_catalog_version_get_failed: %w", err)
	}

	raw, err := cache.client.Get(context, cache.pageKey(version, page, limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, apperr.NotFound("Catalogue page")
		}
		return nil, 0, fmt.Errorf("redis_catalog_page_get_failed: %w", err)
	}

	var payload cachedPage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, 0, fmt.Errorf("redis_catalog_page_decode_failed: %w", err)
	}

	return payload.Courses, payload.Total, nil
}

/*
SetPage stores a catalogue page under the current version.

Parameters:
  - context: context.Context
  - page: int
  - limit: int
  - courses: []*Course
  - total: int

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisCache) SetPage(context context.Context, page, limit int, courses []*Course, total int) error {
	version, err := cache.client.Get(context, cache.versionKey()).Result()
	if errors.Is(err, redis.Nil) {
		// First write since the last invalidation: start a fresh version.
		version = "1"
		if err := cache.client.Set(context, cache.versionKey(), version, catalogCacheTTL).Err(); err != nil {
			return fmt.Errorf("redis_catalog_version_set_failed: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("redis_catalog_version_get_failed: %w", err)
	}

	raw, err := json.Marshal(cachedPage{Courses: courses, Total: total})
	if err != nil {
		return fmt.Errorf("redis_catalog_page_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cache.pageKey(version, page, limit), raw, catalogCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_catalog_page_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate orphans every cached catalogue page by bumping the version counter.

Parameters:
  - context: context.Context

Returns:
  - error: Counter update failures
*/
func (cache *RedisCache) Invalidate(context context.Context) error {
	if err := cache.client.Incr(context, cache.versionKey()).Err(); err != nil {
		return fmt.Errorf("redis_catalog_invalidate_failed: %w", err)
	}

	// Keep the counter from lingering forever on an idle catalogue.
	if err := cache.client.Expire(context, cache.versionKey(), catalogCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_catalog_version_expire_failed: %w", err)
	}

	return nil
}
