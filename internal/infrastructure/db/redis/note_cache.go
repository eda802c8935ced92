package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/safenotes/notes-system/internal/api/metrics"
	"github.com/safenotes/notes-system/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// NoteCache is a fail-safe read-through cache for note lookups.
// Key format: note:<id>. Redis errors behave like cache misses so an
// unavailable cache never fails a request.
type NoteCache struct {
	client *redis.Client
}

func NewNoteCache(client *redis.Client) *NoteCache {
	return &NoteCache{client: client}
}

func (c *NoteCache) Get(ctx context.Context, id int64) (*domain.Note, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		metrics.NoteCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var note domain.Note
	if err := json.Unmarshal(data, &note); err != nil {
		metrics.NoteCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.NoteCacheTotal.WithLabelValues("hit").Inc()
	return &note, true
}

func (c *NoteCache) Set(ctx context.Context, note *domain.Note) {
	data, err := json.Marshal(note)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(note.ID), data, cacheTTL).Err()
}

func (c *NoteCache) Invalidate(ctx context.Context, id int64) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *NoteCache) key(id int64) string {
	return fmt.Sprintf("note:%d", id)
}
