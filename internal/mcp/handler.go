package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

// StoreService defines the project store operations needed by MCP.
type StoreService interface {
	State() project.State
	Create(ctx context.Context, req project.CreateRequest) error
	Update(ctx context.Context, doc *project.Document) error
	Import(ctx context.Context, raw string) error
	Export(ctx context.Context) (*project.ExportResult, error)
	Reset(ctx context.Context) (bool, error)
	TryStartCooldown() error
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Handler implements the tool operations on top of the store.
type Handler struct {
	store    StoreService
	activity ActivityService
	logger   *slog.Logger
}

// NewHandler creates a Handler. activity may be nil when no activity log is
// configured.
func NewHandler(store StoreService, activitySvc ActivityService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{store: store, activity: activitySvc, logger: logger}
}

func (h *Handler) GetProject(_ context.Context, _ GetProjectParams) (*ProjectStateResponse, error) {
	return h.stateResponse(nil), nil
}

func (h *Handler) CreateProject(ctx context.Context, params CreateProjectParams) (*ProjectStateResponse, error) {
	ctx, ix := withInteraction(ctx, false)

	if err := h.store.TryStartCooldown(); err != nil {
		return nil, withNotices(MapError(err), ix)
	}

	level := project.AcademicLevel(params.AcademicLevel)
	if level == "" {
		level = project.LevelBachelor
	}
	err := h.store.Create(ctx, project.CreateRequest{
		AuthorInfo: params.AuthorInfo,
		Title:      params.Title,
		Level:      level,
	})
	if err != nil && !errors.Is(err, project.ErrPersist) {
		return nil, withNotices(MapError(err), ix)
	}
	return h.stateResponse(ix).withWarning(err), nil
}

func (h *Handler) UpdateProject(ctx context.Context, params UpdateProjectParams) (*ProjectStateResponse, error) {
	ctx, ix := withInteraction(ctx, false)

	doc, err := decodeDocument(params.Document)
	if err != nil {
		return nil, MapError(err)
	}
	err = h.store.Update(ctx, doc)
	if err != nil && !errors.Is(err, project.ErrPersist) {
		return nil, withNotices(MapError(err), ix)
	}
	return h.stateResponse(ix).withWarning(err), nil
}

func (h *Handler) ImportProject(ctx context.Context, params ImportProjectParams) (*ProjectStateResponse, error) {
	ctx, ix := withInteraction(ctx, params.Confirm)

	err := h.store.Import(ctx, params.Content)
	switch {
	case errors.Is(err, project.ErrCanceled):
		resp := h.stateResponse(ix)
		resp.ConfirmationRequired = ix.declined()
		return resp, nil
	case err != nil && !errors.Is(err, project.ErrPersist):
		return nil, withNotices(MapError(err), ix)
	}
	return h.stateResponse(ix).withWarning(err), nil
}

func (h *Handler) ExportProject(ctx context.Context, _ ExportProjectParams) (*ExportProjectResponse, error) {
	ctx, ix := withInteraction(ctx, false)

	result, err := h.store.Export(ctx)
	if err != nil {
		return nil, withNotices(MapError(err), ix)
	}
	return &ExportProjectResponse{
		FileName: result.FileName,
		Location: result.Location,
		Content:  string(result.Content),
		Notices:  ix.Notices(),
	}, nil
}

func (h *Handler) ResetProject(ctx context.Context, params ResetProjectParams) (*ProjectStateResponse, error) {
	ctx, ix := withInteraction(ctx, params.Confirm)

	done, err := h.store.Reset(ctx)
	if err != nil && !errors.Is(err, project.ErrPersist) {
		return nil, withNotices(MapError(err), ix)
	}
	resp := h.stateResponse(ix).withWarning(err)
	if !done {
		resp.ConfirmationRequired = ix.declined()
	}
	return resp, nil
}

func (h *Handler) GetRecentActivity(ctx context.Context, params GetRecentActivityParams) ([]ActivityEntryResponse, error) {
	if h.activity == nil {
		return []ActivityEntryResponse{}, nil
	}
	opts := activity.ListActivityOptions{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Type != "" {
		t := activity.ActivityType(params.Type)
		opts.ActivityType = &t
	}
	entries, err := h.activity.GetRecentActivity(ctx, opts)
	if err != nil {
		return nil, MapError(err)
	}
	resp := make([]ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, ActivityEntryResponse{
			ID:        e.ID,
			Type:      string(e.ActivityType),
			Title:     e.Title,
			Summary:   e.Summary,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp, nil
}

func (h *Handler) stateResponse(ix *interaction) *ProjectStateResponse {
	state := h.store.State()
	resp := &ProjectStateResponse{
		Document: state.Document,
		Creating: state.Creating,
		Cooldown: state.Cooldown,
	}
	if ix != nil {
		resp.Notices = ix.Notices()
	}
	return resp
}

// decodeDocument runs a tool-supplied document through the same decoder used
// for persisted snapshots.
func decodeDocument(raw map[string]any) (*project.Document, error) {
	if raw == nil {
		return nil, project.ErrNoDocument
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", project.ErrParse, err)
	}
	return project.Decode(string(data), "title", "authorInfo")
}
