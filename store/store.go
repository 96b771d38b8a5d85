package store

import (
	"context"
	"sync"

	"autotube/config"
	"autotube/types"
)

// Store abstracts the configuration singleton and the video list so request
// handlers never touch process globals directly. The in-memory
// implementation is the default; a Redis-backed one can be selected via
// environment for state that survives restarts.
type Store interface {
	// Config returns the current configuration singleton.
	Config(ctx context.Context) (types.Configuration, error)
	// MergeConfig applies a partial update over the singleton and returns
	// the merged result. Fields absent from the update are retained.
	MergeConfig(ctx context.Context, update types.ConfigUpdate) (types.Configuration, error)
	// Videos returns all stored video records in append order.
	Videos(ctx context.Context) ([]types.VideoRecord, error)
	// AppendVideo adds a record to the end of the list.
	AppendVideo(ctx context.Context, video types.VideoRecord) error
}

// DefaultConfiguration is the state a fresh process starts with.
func DefaultConfiguration() types.Configuration {
	return types.Configuration{
		Topic:    "",
		Schedule: config.DefaultSchedule,
		Enabled:  false,
	}
}

// MemoryStore keeps all state in process memory behind a RWMutex.
// Everything is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	config types.Configuration
	videos []types.VideoRecord
}

// NewMemoryStore creates a store seeded with the default configuration.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{config: DefaultConfiguration()}
}

func (s *MemoryStore) Config(ctx context.Context) (types.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, nil
}

func (s *MemoryStore) MergeConfig(ctx context.Context, update types.ConfigUpdate) (types.Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = update.Apply(s.config)
	return s.config, nil
}

func (s *MemoryStore) Videos(ctx context.Context) ([]types.VideoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.VideoRecord, len(s.videos))
	copy(out, s.videos)
	return out, nil
}

func (s *MemoryStore) AppendVideo(ctx context.Context, video types.VideoRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append(s.videos, video)
	return nil
}
