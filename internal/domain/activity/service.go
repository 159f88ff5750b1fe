package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	defaultListLimit = 50
	// DefaultRetention is how many entries are kept per slot.
	DefaultRetention = 500
)

// Service handles activity log operations.
type Service struct {
	repo      Repository
	logger    *slog.Logger
	retention int
}

// NewService creates a new activity service keeping DefaultRetention
// entries per slot.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, retention: DefaultRetention}
}

// WithRetention changes how many entries are kept per slot. Zero or less
// disables pruning.
func (s *Service) WithRetention(n int) *Service {
	s.retention = n
	return s
}

// LogActivity logs an activity entry with the current timestamp if missing,
// then prunes the slot's history beyond the retention limit.
func (s *Service) LogActivity(ctx context.Context, entry *ActivityEntry) error {
	if entry == nil || entry.ActivityType == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}

	if s.retention > 0 {
		removed, err := s.repo.Prune(ctx, entry.SlotKey, s.retention)
		if err != nil {
			s.logger.Warn("pruning activity failed", "slot", entry.SlotKey, "error", err)
		} else if removed > 0 {
			s.logger.Debug("pruned activity", "slot", entry.SlotKey, "removed", removed)
		}
	}
	return nil
}

// GetRecentActivity lists activity entries with filtering, newest first.
func (s *Service) GetRecentActivity(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	return s.repo.List(ctx, opts)
}
