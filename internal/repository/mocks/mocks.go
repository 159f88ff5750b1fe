package mocks

import (
	"context"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock for project.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *Storage) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *Storage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Generator is a mock for project.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) InitializeNewProject(ctx context.Context, author project.Record, title string, level project.AcademicLevel) (*project.Document, error) {
	args := m.Called(ctx, author, title, level)
	if doc, ok := args.Get(0).(*project.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

// Downloader is a mock for project.Downloader.
type Downloader struct {
	mock.Mock
}

func (m *Downloader) Download(ctx context.Context, fileName string, content []byte) (string, error) {
	args := m.Called(ctx, fileName, content)
	return args.String(0), args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) Prune(ctx context.Context, slotKey string, keep int) (int64, error) {
	args := m.Called(ctx, slotKey, keep)
	return args.Get(0).(int64), args.Error(1)
}
