// Package session tracks whether a user is authenticated and who they are.
//
// The manager is driven from the single UI goroutine; it is not safe for
// concurrent use and does not need to be.
package session

import (
	"context"
	"errors"

	"github.com/Jai71/quicknotes/internal/logging"
	"github.com/Jai71/quicknotes/internal/quicknotes/backend"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

// Handler receives the session after an auth-state change. A nil session
// means the user signed out.
type Handler func(ctx context.Context, s *models.Session)

var errAlreadySubscribed = errors.New("auth-state handler already registered")

// Manager owns the current session and notifies a single subscriber about
// auth-state changes. Sign-up, sign-in, and sign-out delegate to the backend
// and surface its errors verbatim.
type Manager struct {
	backend backend.Service
	log     logging.Logger

	current *models.Session
	handler Handler
}

func NewManager(b backend.Service, log logging.Logger) *Manager {
	return &Manager{backend: b, log: log}
}

// CurrentUser returns the active session, or nil when no user is signed in.
func (m *Manager) CurrentUser() *models.Session {
	return m.current
}

// Subscribe registers the auth-state change handler. Exactly one handler is
// allowed per running instance; call Unsubscribe on shutdown.
func (m *Manager) Subscribe(h Handler) error {
	if m.handler != nil {
		return errAlreadySubscribed
	}
	m.handler = h
	return nil
}

// Unsubscribe removes the registered handler.
func (m *Manager) Unsubscribe() {
	m.handler = nil
}

func (m *Manager) emit(ctx context.Context) {
	if m.handler != nil {
		m.handler(ctx, m.current)
	}
}

// SignUp creates an account. The backend signs the fresh account in, so a
// successful sign-up establishes a session and emits an auth-state change.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	s, err := m.backend.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	m.current = s
	m.log.Info(ctx, "signed up", "user", s.UserID)
	m.emit(ctx)
	return nil
}

// SignIn authenticates and replaces any existing session. Switching users
// emits an auth-state change, which the subscriber uses to reload the note
// list so the prior user's notes never remain visible.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	s, err := m.backend.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	m.current = s
	m.log.Info(ctx, "signed in", "user", s.UserID)
	m.emit(ctx)
	return nil
}

// SignOut invalidates the backend authentication and clears the session.
func (m *Manager) SignOut(ctx context.Context) error {
	if m.current == nil {
		return nil
	}
	if err := m.backend.SignOut(ctx); err != nil {
		return err
	}
	m.log.Info(ctx, "signed out", "user", m.current.UserID)
	m.current = nil
	m.emit(ctx)
	return nil
}
