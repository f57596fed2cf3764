package game

import "context"

// Repository stores the append-mostly game history.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	Create(ctx context.Context, record Record) error
}
