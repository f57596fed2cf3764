package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pitchside/matchday/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	order   []string
	players map[string]player.Player
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		players: make(map[string]player.Player, len(seed)),
	}
	for _, p := range seed {
		if _, ok := r.players[p.ID]; ok {
			continue
		}
		r.order = append(r.order, p.ID)
		r.players[p.ID] = p
	}

	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; ok {
		return fmt.Errorf("player %s already exists", p.ID)
	}
	r.order = append(r.order, p.ID)
	r.players[p.ID] = p

	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; !ok {
		return fmt.Errorf("player %s does not exist", p.ID)
	}
	r.players[p.ID] = p

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return fmt.Errorf("player %s does not exist", playerID)
	}
	delete(r.players, playerID)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
