package project_test

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
	"github.com/rpggio/proyek-akademik/internal/repository"
)

type memStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string]string{}}
}

func (m *memStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

type stubPrompter struct {
	answer   bool
	confirms []string
	notices  []string
}

func (p *stubPrompter) Confirm(_ context.Context, message string) bool {
	p.confirms = append(p.confirms, message)
	return p.answer
}

func (p *stubPrompter) Notify(_ context.Context, message string) {
	p.notices = append(p.notices, message)
}

type fakeTimer struct {
	at    time.Duration
	f     func()
	fired bool
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers = append(c.timers, &fakeTimer{at: c.now + d, f: f})
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []func()
	for _, t := range c.timers {
		if !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t.f)
		}
	}
	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

type testEnv struct {
	store    *project.Store
	storage  *memStorage
	prompter *stubPrompter
	clock    *fakeClock
}

func newTestEnv(gen project.Generator) *testEnv {
	env := &testEnv{
		storage:  newMemStorage(),
		prompter: &stubPrompter{answer: true},
		clock:    &fakeClock{},
	}
	env.store = project.NewStore(project.Config{
		Storage:   env.storage,
		Generator: gen,
		Prompter:  env.prompter,
		Clock:     env.clock,
	})
	return env
}

func sampleDocument() *project.Document {
	return &project.Document{
		Title: "Analisis Data Penjualan",
		AuthorInfo: project.Record{
			"name":      "Sari Wulandari",
			"studentId": "1901234567",
		},
		Outline: []any{"Pendahuluan", "Metode"},
		Chapters: []any{
			project.Record{"title": "BAB I PENDAHULUAN", "content": "<p>Latar belakang</p>"},
		},
		Bibliography:      []any{project.Record{"author": "Sugiyono", "year": "2019"}},
		Appendices:        []any{},
		StatementPageData: project.Record{"city": "Bandung"},
		ApprovalData:      nil,
		Preface:           "<p>Puji syukur</p>",
		Abstract:          "<p>Penelitian ini</p>",
	}
}

type recordingRecorder struct {
	entries []activity.ActivityEntry
}

func (r *recordingRecorder) LogActivity(_ context.Context, entry *activity.ActivityEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}
