package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
)

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	AuthorInfo Record
	Title      string
	Level      AcademicLevel
}

// Create asks the generator for a new document and makes it active. On
// failure the previous document is kept and the user is notified.
func (s *Store) Create(ctx context.Context, req CreateRequest) error {
	release := s.beginCreate()
	defer release()

	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID)
	logger.Info("generating project", "title", req.Title, "level", req.Level)

	doc, err := s.generate(ctx, req)
	if err == nil {
		// The caller may have gone away while the generator was running.
		err = ctx.Err()
	}
	if err != nil {
		logger.Error("project generation failed", "error", err)
		s.prompter.Notify(ctx, fmt.Sprintf("Failed to create project: %v", err))
		s.record(ctx, activity.TypeGenerationFailed, "Project generation failed", nil, generationDetails(requestID, req, err))
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	logger.Info("project generated", "chapters", len(doc.Chapters))
	return s.commit(ctx, Backfill(doc), activity.TypeProjectCreated, "Project created", generationDetails(requestID, req, nil))
}

func (s *Store) generate(ctx context.Context, req CreateRequest) (*Document, error) {
	if s.generator == nil {
		return nil, errors.New("no generator configured")
	}
	doc, err := s.generator.InitializeNewProject(ctx, req.AuthorInfo, req.Title, req.Level)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("generator returned no document")
	}
	return doc, nil
}

// beginCreate raises the creating flag and returns the matching release.
func (s *Store) beginCreate() (release func()) {
	s.mu.Lock()
	s.creating = true
	s.mu.Unlock()
	s.publish()

	return func() {
		s.mu.Lock()
		s.creating = false
		s.mu.Unlock()
		s.publish()
	}
}

func generationDetails(requestID string, req CreateRequest, err error) string {
	details := map[string]any{
		"request_id": requestID,
		"title":      req.Title,
		"level":      req.Level,
	}
	if err != nil {
		details["error"] = err.Error()
	}
	data, _ := json.Marshal(details)
	return string(data)
}
