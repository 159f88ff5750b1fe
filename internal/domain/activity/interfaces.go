package activity

import "context"

// Repository provides persistence operations for activity entries.
type Repository interface {
	Log(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error)
	// Prune deletes all but the newest keep entries for slotKey and reports
	// how many were removed.
	Prune(ctx context.Context, slotKey string, keep int) (int64, error)
}
