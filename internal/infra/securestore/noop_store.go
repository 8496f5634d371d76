package securestore

import (
	"context"
	"log/slog"

	"vendorhub/internal/domain/repository"
)

// noopStore is the fallback for platforms without secure storage. Writes
// and removals succeed silently, reads always miss. Callers already have
// to tolerate non-persistence, so nothing here ever errors.
type noopStore struct {
	logger *slog.Logger
}

// NewNoopStore creates a store that persists nothing.
func NewNoopStore(logger *slog.Logger) repository.KeyValueStore {
	logger.Debug("Secure storage disabled, state will not persist")

	return &noopStore{logger: logger}
}

func (s *noopStore) Set(ctx context.Context, key string, value any) error {
	return nil
}

func (s *noopStore) Get(ctx context.Context, key string, out any) (bool, error) {
	return false, nil
}

func (s *noopStore) Remove(ctx context.Context, key string) error {
	return nil
}
