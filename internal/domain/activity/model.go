package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeProjectCreated   ActivityType = "project_created"
	TypeProjectUpdated   ActivityType = "project_updated"
	TypeProjectImported  ActivityType = "project_imported"
	TypeProjectExported  ActivityType = "project_exported"
	TypeProjectReset     ActivityType = "project_reset"
	TypeGenerationFailed ActivityType = "generation_failed"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	SlotKey      string       `json:"slot_key"`
	ActivityType ActivityType `json:"type"`
	Title        string       `json:"title,omitempty"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string or file name
	CreatedAt    time.Time    `json:"created_at"`
}
