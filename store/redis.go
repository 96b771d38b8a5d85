package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"autotube/types"
)

const (
	redisConfigKey = "autotube:config"
	redisVideosKey = "autotube:videos"
)

// RedisStore persists the configuration singleton and the video list in
// Redis, so state survives process restarts. The config lives under a
// single JSON key; videos are a list of JSON values appended with RPUSH.
type RedisStore struct {
	client *redis.Client
	// mergeMu serializes read-modify-write merges from this process.
	// Concurrent merges from other processes still race; last write wins.
	mergeMu sync.Mutex
}

// NewRedisStore connects to Redis and seeds the configuration key with
// defaults if it does not exist yet.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	s := &RedisStore{client: client}

	seed, err := json.Marshal(DefaultConfiguration())
	if err != nil {
		return nil, err
	}
	if err := client.SetNX(ctx, redisConfigKey, seed, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to seed config: %w", err)
	}
	return s, nil
}

func (s *RedisStore) Config(ctx context.Context) (types.Configuration, error) {
	raw, err := s.client.Get(ctx, redisConfigKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return DefaultConfiguration(), nil
	}
	if err != nil {
		return types.Configuration{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg types.Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return types.Configuration{}, fmt.Errorf("stored config is corrupt: %w", err)
	}
	return cfg, nil
}

func (s *RedisStore) MergeConfig(ctx context.Context, update types.ConfigUpdate) (types.Configuration, error) {
	s.mergeMu.Lock()
	defer s.mergeMu.Unlock()

	cfg, err := s.Config(ctx)
	if err != nil {
		return types.Configuration{}, err
	}

	cfg = update.Apply(cfg)
	raw, err := json.Marshal(cfg)
	if err != nil {
		return types.Configuration{}, err
	}
	if err := s.client.Set(ctx, redisConfigKey, raw, 0).Err(); err != nil {
		return types.Configuration{}, fmt.Errorf("failed to write config: %w", err)
	}
	return cfg, nil
}

func (s *RedisStore) Videos(ctx context.Context) ([]types.VideoRecord, error) {
	raws, err := s.client.LRange(ctx, redisVideosKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read videos: %w", err)
	}

	videos := make([]types.VideoRecord, 0, len(raws))
	for _, raw := range raws {
		var v types.VideoRecord
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("stored video is corrupt: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (s *RedisStore) AppendVideo(ctx context.Context, video types.VideoRecord) error {
	raw, err := json.Marshal(video)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, redisVideosKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to append video: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// NewFromEnv selects a store backend from the environment: Redis when
// REDIS_ADDR is set (REDIS_PASS and REDIS_DB optional), in-memory otherwise.
func NewFromEnv(ctx context.Context) (Store, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return NewMemoryStore(), nil
	}

	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			db = v
		}
	}
	return NewRedisStore(ctx, addr, os.Getenv("REDIS_PASS"), db)
}
