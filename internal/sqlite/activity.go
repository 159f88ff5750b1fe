package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log inserts a new activity entry and fills in its ID.
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO activity_log (slot_key, activity_type, title, summary, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		entry.SlotKey,
		entry.ActivityType,
		nullIfEmpty(entry.Title),
		entry.Summary,
		nullIfEmpty(entry.Details),
		entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

// Prune keeps the newest keep entries for slotKey and deletes the rest.
func (r *ActivityRepository) Prune(ctx context.Context, slotKey string, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM activity_log
		WHERE slot_key = ?
		  AND id NOT IN (
			SELECT id FROM activity_log
			WHERE slot_key = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		  )
	`, slotKey, slotKey, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity: %w", err)
	}
	return result.RowsAffected()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// List returns activity entries matching the given filters, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	query := `
		SELECT
			id, slot_key, activity_type, title, summary, details, created_at
		FROM activity_log
	`

	var (
		args       []any
		conditions []string
	)

	if opts.SlotKey != "" {
		conditions = append(conditions, "slot_key = ?")
		args = append(args, opts.SlotKey)
	}
	if opts.ActivityType != nil {
		conditions = append(conditions, "activity_type = ?")
		args = append(args, *opts.ActivityType)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	entries := []activity.ActivityEntry{}
	for rows.Next() {
		var (
			entry          activity.ActivityEntry
			title, details sql.NullString
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.SlotKey,
			&entry.ActivityType,
			&title,
			&entry.Summary,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.Title = title.String
		entry.Details = details.String
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
