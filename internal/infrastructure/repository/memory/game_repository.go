package memory

import (
	"context"
	"sync"

	"github.com/pitchside/matchday/internal/domain/game"
)

// GameRepository keeps game history in memory, newest first.
type GameRepository struct {
	mu      sync.RWMutex
	records []game.Record
}

func NewGameRepository(seed []game.Record) *GameRepository {
	records := make([]game.Record, len(seed))
	copy(records, seed)

	return &GameRepository{records: records}
}

func (r *GameRepository) List(_ context.Context) ([]game.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Record, len(r.records))
	copy(out, r.records)

	return out, nil
}

func (r *GameRepository) ListRecent(_ context.Context, limit int) ([]game.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]game.Record, limit)
	copy(out, r.records[:limit])

	return out, nil
}

func (r *GameRepository) Create(_ context.Context, record game.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]game.Record{record}, r.records...)

	return nil
}
