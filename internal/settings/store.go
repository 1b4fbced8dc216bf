package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how stale a cached setting can be if an
// invalidation is lost.
const cacheTTL = 5 * time.Minute

// Store is a read-through key-value store over the 'settings' table.
// Reads hit redis first when a client is attached and fall back to
// the database; admin writes go to the database and invalidate the
// cached key. Without redis the store simply reads the database every
// time.
type Store struct {
	db          *sql.DB
	redisClient *redis.Client
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SetRedisClient attaches an optional cache. Safe to skip entirely.
func (s *Store) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func cacheKey(key string) string {
	return fmt.Sprintf("setting:%s", key)
}

// Get returns the value for a setting key, or "" when the key was
// never written. A missing key is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey(key)).Result()
		if err == nil {
			return cached, nil
		}
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT setting_value FROM settings WHERE setting_key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}

	if s.redisClient != nil {
		s.redisClient.Set(ctx, cacheKey(key), value, cacheTTL)
	}
	return value, nil
}

// Set upserts a setting and drops the cached copy.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (setting_key, setting_value)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}

	if s.redisClient != nil {
		s.redisClient.Del(ctx, cacheKey(key))
	}
	return nil
}

// All returns every setting, for the admin settings screen.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT setting_key, setting_value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}
