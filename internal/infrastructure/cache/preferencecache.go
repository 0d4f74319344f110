package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"praxis/internal/domain/outbox"
	"praxis/internal/shared/logger"
)

const preferenceKeyPrefix = "praxis:pref:"

// cachedPreference is the wire form of a preference row in redis. A cached
// "absent" marker (Missing=true) avoids hammering the database for users who
// never touched their settings.
type cachedPreference struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	OrgID     uint            `json:"org_id"`
	Channels  map[string]bool `json:"channels"`
	Events    map[string]bool `json:"events"`
	UpdatedAt time.Time       `json:"updated_at"`
	Missing   bool            `json:"missing"`
}

// PreferenceCache is a read-through cache in front of a PreferenceRepository.
// The enqueue path reads preferences on every notification, so this keeps the
// hot path off the database. Redis outages degrade to direct reads.
type PreferenceCache struct {
	inner  outbox.PreferenceRepository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewPreferenceCache(inner outbox.PreferenceRepository, client *redis.Client, ttl time.Duration, log logger.Interface) *PreferenceCache {
	return &PreferenceCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: log.Named("preference-cache"),
	}
}

func (c *PreferenceCache) GetByUser(ctx context.Context, userID, orgID uint) (*outbox.Preference, error) {
	key := c.buildKey(userID, orgID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached cachedPreference
		if err := json.Unmarshal(data, &cached); err == nil {
			if cached.Missing {
				return nil, nil
			}
			pref, err := outbox.ReconstructPreference(cached.ID, cached.UserID, cached.OrgID, cached.Channels, cached.Events, cached.UpdatedAt)
			if err == nil {
				return pref, nil
			}
		}
		// Corrupt entry, fall through to the database.
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warnw("preference cache read failed, falling back to database", "error", err)
	}

	pref, err := c.inner.GetByUser(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, pref, userID, orgID)
	return pref, nil
}

func (c *PreferenceCache) Upsert(ctx context.Context, p *outbox.Preference) error {
	if err := c.inner.Upsert(ctx, p); err != nil {
		return err
	}

	// Invalidate rather than write-through; the next read repopulates.
	if err := c.client.Del(ctx, c.buildKey(p.UserID(), p.OrgID())).Err(); err != nil {
		c.logger.Warnw("failed to invalidate preference cache", "user_id", p.UserID(), "error", err)
	}
	return nil
}

func (c *PreferenceCache) store(ctx context.Context, key string, pref *outbox.Preference, userID, orgID uint) {
	cached := cachedPreference{UserID: userID, OrgID: orgID, Missing: pref == nil}
	if pref != nil {
		cached.ID = pref.ID()
		cached.Channels = pref.Channels()
		cached.Events = pref.Events()
		cached.UpdatedAt = pref.UpdatedAt()
		cached.Missing = false
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to populate preference cache", "user_id", userID, "error", err)
	}
}

func (c *PreferenceCache) buildKey(userID, orgID uint) string {
	return fmt.Sprintf("%s%d:%d", preferenceKeyPrefix, orgID, userID)
}
