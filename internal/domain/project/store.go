package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/repository"
)

const (
	// DefaultSlotKey is the persistence key holding the active document.
	DefaultSlotKey = "academicProject"
	// DefaultCooldown is how long the generation guard stays active.
	DefaultCooldown = 15 * time.Second
)

const (
	msgConfirmReset     = "Are you sure you want to reset the project? All unsaved work will be lost."
	msgConfirmOverwrite = "Importing will overwrite the current project. Continue?"
)

// Config wires the Store to its collaborators. Storage is required.
type Config struct {
	Storage    Storage
	Generator  Generator
	Prompter   Prompter
	Downloader Downloader
	Clock      Clock
	Recorder   Recorder
	Logger     *slog.Logger
	SlotKey    string
	Cooldown   time.Duration
}

// Store holds the single active project document and keeps the persistence
// slot in sync with it.
type Store struct {
	storage    Storage
	generator  Generator
	prompter   Prompter
	downloader Downloader
	clock      Clock
	recorder   Recorder
	logger     *slog.Logger
	slotKey    string
	cooldownD  time.Duration

	// commitMu serializes state replacement with the slot write.
	commitMu sync.Mutex

	mu          sync.Mutex
	doc         *Document
	creating    bool
	cooldown    bool
	cooldownGen uint64
	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore creates a Store with no active document. Call Load to read the
// persistence slot.
func NewStore(cfg Config) *Store {
	s := &Store{
		storage:     cfg.Storage,
		generator:   cfg.Generator,
		prompter:    cfg.Prompter,
		downloader:  cfg.Downloader,
		clock:       cfg.Clock,
		recorder:    cfg.Recorder,
		logger:      cfg.Logger,
		slotKey:     cfg.SlotKey,
		cooldownD:   cfg.Cooldown,
		subscribers: make(map[int]func(State)),
	}
	if s.prompter == nil {
		s.prompter = silentPrompter{}
	}
	if s.clock == nil {
		s.clock = RealClock{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.slotKey == "" {
		s.slotKey = DefaultSlotKey
	}
	if s.cooldownD <= 0 {
		s.cooldownD = DefaultCooldown
	}
	return s
}

// InitialState reads the persistence slot. It never fails: an absent,
// unreadable or incomplete snapshot yields the built-in default document.
func (s *Store) InitialState(ctx context.Context) *Document {
	raw, err := s.storage.Get(ctx, s.slotKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("reading project slot failed, using default", "key", s.slotKey, "error", err)
		}
		return DefaultDocument()
	}

	doc, err := Decode(raw, loadRequiredFields...)
	if err != nil {
		s.logger.Warn("stored project unreadable, using default", "key", s.slotKey, "error", err)
		return DefaultDocument()
	}
	return doc
}

// Load makes the persisted (or default) document the active one.
func (s *Store) Load(ctx context.Context) error {
	doc := s.InitialState(ctx)
	s.logger.Info("project loaded", "title", doc.Title)
	return s.commit(ctx, doc, "", "", "")
}

// Current returns the active document or nil. Documents are replaced, never
// patched: callers must not mutate the returned value.
func (s *Store) Current() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// State returns a snapshot of the document and both flags.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Creating reports whether a creation request is in flight.
func (s *Store) Creating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creating
}

// Subscribe registers fn to receive every state change. fn runs synchronously
// and must not call mutating Store methods.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Update replaces the active document with a copy of doc. Later changes to
// doc by the caller do not reach the store.
func (s *Store) Update(ctx context.Context, doc *Document) error {
	if doc == nil {
		return ErrNoDocument
	}
	next := *doc
	return s.commit(ctx, Backfill(&next), activity.TypeProjectUpdated, "Project updated", "")
}

// Reset clears the active document and the persistence slot after the user
// confirms. It reports whether the reset happened.
func (s *Store) Reset(ctx context.Context) (bool, error) {
	if !s.prompter.Confirm(ctx, msgConfirmReset) {
		s.logger.Debug("reset declined")
		return false, nil
	}
	if err := s.commit(ctx, nil, activity.TypeProjectReset, "Project reset", ""); err != nil {
		s.prompter.Notify(ctx, "The project was cleared but could not be removed from storage.")
		return true, err
	}
	return true, nil
}

// commit is the single entry point for replacing the active document.
func (s *Store) commit(ctx context.Context, doc *Document, kind activity.ActivityType, summary, details string) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	err := s.persist(ctx, doc)
	s.publish()
	if kind != "" {
		s.record(ctx, kind, summary, doc, details)
	}
	return err
}

func (s *Store) persist(ctx context.Context, doc *Document) error {
	if doc == nil {
		if err := s.storage.Remove(ctx, s.slotKey); err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("clearing project slot failed", "key", s.slotKey, "error", err)
			return fmt.Errorf("%w: %w", ErrPersist, err)
		}
		return nil
	}

	raw, err := Encode(doc)
	if err != nil {
		s.logger.Error("serializing project failed", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.storage.Set(ctx, s.slotKey, raw); err != nil {
		s.logger.Error("writing project slot failed", "key", s.slotKey, "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (s *Store) publish() {
	s.mu.Lock()
	state := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

func (s *Store) snapshotLocked() State {
	return State{
		Document: s.doc,
		Creating: s.creating,
		Cooldown: s.cooldown,
	}
}

func (s *Store) record(ctx context.Context, kind activity.ActivityType, summary string, doc *Document, details string) {
	if s.recorder == nil {
		return
	}
	entry := &activity.ActivityEntry{
		SlotKey:      s.slotKey,
		ActivityType: kind,
		Summary:      summary,
		Details:      details,
	}
	if doc != nil {
		entry.Title = doc.Title
	}
	if err := s.recorder.LogActivity(ctx, entry); err != nil {
		s.logger.Warn("recording activity failed", "type", kind, "error", err)
	}
}
