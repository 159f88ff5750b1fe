package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
)

// Import replaces the active document with one parsed from raw. The document
// must carry title, outline, chapters and authorInfo. Nothing changes unless
// every step succeeds.
func (s *Store) Import(ctx context.Context, raw string) error {
	doc, err := Decode(raw, importRequiredFields...)
	if err != nil {
		s.logger.Warn("import rejected", "error", err)
		s.prompter.Notify(ctx, importFailureMessage(err))
		return err
	}

	if s.Current() != nil && !s.prompter.Confirm(ctx, msgConfirmOverwrite) {
		s.logger.Debug("import declined")
		return ErrCanceled
	}

	if err := s.commit(ctx, doc, activity.TypeProjectImported, "Project imported", ""); err != nil {
		s.prompter.Notify(ctx, "The project was imported but could not be saved.")
		return err
	}
	s.prompter.Notify(ctx, "Project imported successfully.")
	return nil
}

func importFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidStructure):
		return fmt.Sprintf("Import failed: the file is not a valid project (%v).", err)
	default:
		return fmt.Sprintf("Import failed: the file could not be read (%v).", err)
	}
}

// Export serializes the active document and hands it to the Downloader under
// a name derived from the title.
func (s *Store) Export(ctx context.Context) (*ExportResult, error) {
	doc := s.Current()
	if doc == nil {
		s.prompter.Notify(ctx, "There is no project to export.")
		return nil, ErrNoDocument
	}

	result, err := s.export(ctx, doc)
	if err != nil {
		s.logger.Error("export failed", "title", doc.Title, "error", err)
		s.prompter.Notify(ctx, "Something went wrong while exporting the project.")
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	s.logger.Info("project exported", "file", result.FileName, "location", result.Location)
	s.record(ctx, activity.TypeProjectExported, "Project exported", doc, result.FileName)
	return result, nil
}

func (s *Store) export(ctx context.Context, doc *Document) (result *ExportResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("panic during export: %v", r)
		}
	}()

	content, err := EncodeIndent(doc)
	if err != nil {
		return nil, err
	}

	result = &ExportResult{
		FileName: ExportFileName(doc.Title),
		Content:  content,
	}
	if s.downloader == nil {
		return result, nil
	}
	location, err := s.downloader.Download(ctx, result.FileName, content)
	if err != nil {
		return nil, err
	}
	result.Location = location
	return result, nil
}
