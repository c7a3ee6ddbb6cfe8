// Package backend wraps the hosted data service behind a small interface the
// client core depends on: password auth plus CRUD over the notes table.
//
// Access control is the backend's job. The service is expected to restrict
// every read and write to rows owned by the authenticated user, so the client
// never filters another user's data itself.
package backend

import (
	"context"

	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

// Service is the surface the client uses to talk to the data service.
//
// All methods honor context cancellation and return *common.BackendError for
// provider-reported failures, so callers can show the provider message
// verbatim.
type Service interface {
	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, email, password string) (*models.Session, error)

	// SignIn authenticates an existing account.
	SignIn(ctx context.Context, email, password string) (*models.Session, error)

	// SignOut invalidates the current authentication.
	SignOut(ctx context.Context) error

	// ListNotes fetches all notes owned by the current user, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote inserts a note; the backend assigns id and creation time.
	CreateNote(ctx context.Context, draft models.Draft) (*models.Note, error)

	// UpdateNote overwrites title and content of the identified note.
	UpdateNote(ctx context.Context, id string, draft models.Draft) (*models.Note, error)

	// DeleteNote removes the identified note.
	DeleteNote(ctx context.Context, id string) error

	// Close releases the underlying connection.
	Close() error
}
