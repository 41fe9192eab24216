package redis

import (
	"context"
	"encoding/json"
	"errors"

	"habitquest/internal/models"
	"habitquest/internal/repositories"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefixes
	activityKeyPrefix = "activity:"
	feedKeySuffix     = ":feed"

	// FeedMaxEntries caps the per-user feed, oldest entries drop off.
	FeedMaxEntries = 50
)

// ActivityStore is the key-value store the presentation layer keeps its
// journal, mood and task data in. The account service never reads or
// writes through it.
type ActivityStore struct {
	rdb *redis.Client
}

func NewActivityStore(rdb *redis.Client) *ActivityStore {
	return &ActivityStore{rdb: rdb}
}

func userKey(userID, key string) string {
	return activityKeyPrefix + userID + ":" + key
}

func feedKey(userID string) string {
	return activityKeyPrefix + userID + feedKeySuffix
}

// Get returns the stored value for the user's key, or ErrKeyNotFound.
func (s *ActivityStore) Get(ctx context.Context, userID, key string) (string, error) {
	val, err := s.rdb.Get(ctx, userKey(userID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repositories.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set stores the value under the user's key, overwriting any previous value.
func (s *ActivityStore) Set(ctx context.Context, userID, key, value string) error {
	return s.rdb.Set(ctx, userKey(userID, key), value, 0).Err()
}

// AppendFeed pushes an entry onto the front of the user's activity feed and
// trims the feed to FeedMaxEntries.
func (s *ActivityStore) AppendFeed(ctx context.Context, userID string, entry models.FeedEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	key := feedKey(userID)
	if err := s.rdb.LPush(ctx, key, payload).Err(); err != nil {
		return err
	}
	return s.rdb.LTrim(ctx, key, 0, FeedMaxEntries-1).Err()
}

// Feed returns up to limit entries, newest first. Entries that fail to
// decode are skipped rather than failing the whole read.
func (s *ActivityStore) Feed(ctx context.Context, userID string, limit int64) ([]models.FeedEntry, error) {
	if limit <= 0 || limit > FeedMaxEntries {
		limit = FeedMaxEntries
	}
	raw, err := s.rdb.LRange(ctx, feedKey(userID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]models.FeedEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.FeedEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
