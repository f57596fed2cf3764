package usecase

import (
	"context"
	"time"
)

// ChangeKind tags what part of the shared state moved.
type ChangeKind string

const (
	ChangeRoster     ChangeKind = "roster"
	ChangeAssignment ChangeKind = "assignment"
	ChangeGame       ChangeKind = "game"
)

// ChangeEvent is handed to the external notification feed after a
// successful write so watching clients can re-load.
type ChangeEvent struct {
	Kind       ChangeKind `json:"kind"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// ChangePublisher delivers change events to the external notification
// collaborator. Delivery is best-effort: a failed publish never unwinds the
// write that triggered it.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

// NopPublisher drops every event. Used when no notification feed is
// configured, and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ChangeEvent) {}
