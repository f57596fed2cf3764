package assignment

import "context"

// Repository persists the single shared current-assignment record. Save is
// last-writer-wins: there is no version check, so concurrent administrators
// overwrite each other silently.
type Repository interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, snap Snapshot) error
}
