package project

import (
	"context"
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
)

// Storage is a key-value persistence slot. Get returns repository.ErrNotFound
// when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Generator produces a fresh Document from author metadata.
type Generator interface {
	InitializeNewProject(ctx context.Context, author Record, title string, level AcademicLevel) (*Document, error)
}

// Prompter asks the user yes/no questions and shows notices.
type Prompter interface {
	Confirm(ctx context.Context, message string) bool
	Notify(ctx context.Context, message string)
}

// Downloader delivers an exported file to the user.
type Downloader interface {
	Download(ctx context.Context, fileName string, content []byte) (string, error)
}

// Clock schedules deferred callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

// Recorder keeps a history of store transitions.
type Recorder interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}
