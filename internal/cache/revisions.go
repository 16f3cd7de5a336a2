// Package cache holds the short-lived redis copy of the full revision
// list. It is strictly best-effort: every failure is treated as a
// cache miss and never surfaces to the caller.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/puravida-ops/casitas-api/internal/models"
)

const (
	revisionsKey = "revisiones:all"
	revisionsTTL = 30 * time.Second
)

type RevisionCache struct {
	rdb *redis.Client
}

// New returns a cache, or nil when addr is empty. All methods are
// nil-receiver safe so callers never need to branch.
func New(addr string) *RevisionCache {
	if addr == "" {
		return nil
	}
	return &RevisionCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *RevisionCache) Get(ctx context.Context) ([]models.Revision, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, revisionsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("revision cache get", "error", err)
		}
		return nil, false
	}
	var revs []models.Revision
	if err := json.Unmarshal(raw, &revs); err != nil {
		return nil, false
	}
	return revs, true
}

func (c *RevisionCache) Set(ctx context.Context, revs []models.Revision) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(revs)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, revisionsKey, raw, revisionsTTL).Err(); err != nil {
		slog.Debug("revision cache set", "error", err)
	}
}

func (c *RevisionCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, revisionsKey).Err(); err != nil {
		slog.Debug("revision cache invalidate", "error", err)
	}
}
