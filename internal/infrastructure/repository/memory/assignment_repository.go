package memory

import (
	"context"
	"sync"

	"github.com/pitchside/matchday/internal/domain/assignment"
)

// AssignmentRepository holds the single current-assignment record. Save
// overwrites unconditionally, matching the last-writer-wins semantics of
// the shared record.
type AssignmentRepository struct {
	mu     sync.RWMutex
	snap   assignment.Snapshot
	exists bool
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

func (r *AssignmentRepository) Load(_ context.Context) (assignment.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snap, r.exists, nil
}

func (r *AssignmentRepository) Save(_ context.Context, snap assignment.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snap = snap
	r.exists = true

	return nil
}
