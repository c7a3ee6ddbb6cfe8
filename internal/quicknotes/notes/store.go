// Package notes holds the client-side cache of the current user's notes.
//
// The store never writes optimistically: every mutation goes to the backend
// first and the list is re-fetched wholesale afterwards, so the UI only ever
// renders backend state. Like the rest of the core it runs on the single UI
// goroutine.
package notes

import (
	"context"
	"sort"

	"github.com/Jai71/quicknotes/internal/common"
	"github.com/Jai71/quicknotes/internal/logging"
	"github.com/Jai71/quicknotes/internal/quicknotes/backend"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
	"github.com/Jai71/quicknotes/internal/quicknotes/session"
)

// Store caches the note list for the signed-in user. No local persistence
// beyond memory.
type Store struct {
	backend  backend.Service
	sessions *session.Manager
	log      logging.Logger

	list []models.Note
}

func NewStore(b backend.Service, sm *session.Manager, log logging.Logger) *Store {
	return &Store{backend: b, sessions: sm, log: log}
}

// Notes returns the cached list, newest first.
func (s *Store) Notes() []models.Note {
	return s.list
}

// Get looks a note up by id in the cached list.
func (s *Store) Get(id string) (models.Note, bool) {
	for _, n := range s.list {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// Load refreshes the cache from the backend. With no session it clears the
// list and succeeds: a signed-out user has no notes to show. Otherwise the
// fetched list replaces the cache wholesale, ordered by creation time
// descending.
func (s *Store) Load(ctx context.Context) error {
	if s.sessions.CurrentUser() == nil {
		s.list = nil
		return nil
	}

	notes, err := s.backend.ListNotes(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	s.list = notes
	s.log.Debug(ctx, "note list loaded", "count", len(notes))
	return nil
}

// Create inserts a validated draft and reloads the list. Fails with
// common.ErrAuthRequired when no session is active; nothing is written in
// that case.
func (s *Store) Create(ctx context.Context, draft models.Draft) error {
	if s.sessions.CurrentUser() == nil {
		return common.ErrAuthRequired
	}
	if _, err := s.backend.CreateNote(ctx, draft); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update overwrites the identified note and reloads. Ownership of the note is
// enforced by the backend's access rules, not checked here.
func (s *Store) Update(ctx context.Context, id string, draft models.Draft) error {
	if s.sessions.CurrentUser() == nil {
		return common.ErrAuthRequired
	}
	if _, err := s.backend.UpdateNote(ctx, id, draft); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes the identified note and reloads.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.sessions.CurrentUser() == nil {
		return common.ErrAuthRequired
	}
	if err := s.backend.DeleteNote(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}
