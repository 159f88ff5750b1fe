package mcp

import (
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

type GetProjectParams struct{}

type CreateProjectParams struct {
	AuthorInfo    map[string]any `json:"author_info,omitempty" jsonschema:"Author metadata such as name, student ID, program and supervisor"`
	Title         string         `json:"title" jsonschema:"Working title of the project"`
	AcademicLevel string         `json:"academic_level,omitempty" jsonschema:"Academic level: D3, S1, S2 or S3 (default S1)"`
}

type UpdateProjectParams struct {
	Document map[string]any `json:"document" jsonschema:"The complete replacement project document"`
}

type ImportProjectParams struct {
	Content string `json:"content" jsonschema:"Serialized project JSON, as produced by export_project"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"Set to true to overwrite the active project"`
}

type ExportProjectParams struct{}

type ResetProjectParams struct {
	Confirm bool `json:"confirm,omitempty" jsonschema:"Set to true to confirm deleting the active project"`
}

type GetRecentActivityParams struct {
	Type   string `json:"type,omitempty" jsonschema:"Only return entries of this activity type"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of entries (default 50)"`
	Offset int    `json:"offset,omitempty" jsonschema:"Offset for pagination"`
}

// ProjectStateResponse is returned by every tool that touches the store.
type ProjectStateResponse struct {
	Document             *project.Document `json:"document"`
	Creating             bool              `json:"creating"`
	Cooldown             bool              `json:"cooldown"`
	Notices              []string          `json:"notices,omitempty"`
	ConfirmationRequired string            `json:"confirmation_required,omitempty"`
	Warning              string            `json:"warning,omitempty"`
}

// withWarning reports a non-fatal error, such as a failed slot write, next
// to the state it left behind.
func (r *ProjectStateResponse) withWarning(err error) *ProjectStateResponse {
	if err != nil {
		r.Warning = err.Error()
	}
	return r
}

type ExportProjectResponse struct {
	FileName string   `json:"file_name"`
	Location string   `json:"location,omitempty"`
	Content  string   `json:"content"`
	Notices  []string `json:"notices,omitempty"`
}

type ActivityEntryResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title,omitempty"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
