// Package form holds the transient edit state: the draft being typed and,
// in edit-mode, which note it belongs to.
package form

import (
	"context"

	"github.com/Jai71/quicknotes/internal/common"
	"github.com/Jai71/quicknotes/internal/logging"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
	"github.com/Jai71/quicknotes/internal/quicknotes/notes"
	"github.com/Jai71/quicknotes/internal/quicknotes/validate"
)

// Controller mediates between the UI and the note store. Two modes: with no
// target set, Submit creates a note; with a target, Submit updates it.
//
// The busy flag is a plain boolean serializing mutations: while one request
// is outstanding every further mutating call fails with common.ErrBusy.
// There is no queue and no cancellation.
type Controller struct {
	store *notes.Store
	log   logging.Logger

	draft  models.Draft
	target string
	busy   bool
}

func NewController(store *notes.Store, log logging.Logger) *Controller {
	return &Controller{store: store, log: log}
}

func (c *Controller) Draft() models.Draft { return c.draft }

// Target returns the id of the note being edited, or "" in create-mode.
func (c *Controller) Target() string { return c.target }

func (c *Controller) Editing() bool { return c.target != "" }

func (c *Controller) Busy() bool { return c.busy }

// SetDraft replaces the draft fields. Validation happens at Submit, not here.
func (c *Controller) SetDraft(title, content string) {
	c.draft = models.Draft{Title: title, Content: content}
}

// Edit switches to edit-mode: the draft is populated from the listed note's
// current values and the target is set.
func (c *Controller) Edit(id string) error {
	n, ok := c.store.Get(id)
	if !ok {
		return common.ErrNotFound
	}
	c.draft = models.Draft{Title: n.Title, Content: n.Content}
	c.target = n.ID
	return nil
}

// Cancel leaves edit-mode and resets the draft.
func (c *Controller) Cancel() {
	c.draft = models.Draft{}
	c.target = ""
}

// Submit validates the draft and sends it: create in create-mode, update in
// edit-mode. A validation failure aborts before anything is written. On
// success the draft and target are reset and the vanished-target check runs
// against the freshly loaded list.
func (c *Controller) Submit(ctx context.Context) error {
	if c.busy {
		return common.ErrBusy
	}

	draft, err := validate.Draft(c.draft.Title, c.draft.Content)
	if err != nil {
		return err
	}

	c.busy = true
	defer func() { c.busy = false }()

	if c.target == "" {
		err = c.store.Create(ctx, draft)
	} else {
		err = c.store.Update(ctx, c.target, draft)
	}
	if err != nil {
		return err
	}

	c.Cancel()
	c.reconcile(ctx)
	return nil
}

// Remove deletes the identified note.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if c.busy {
		return common.ErrBusy
	}
	c.busy = true
	defer func() { c.busy = false }()

	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	c.reconcile(ctx)
	return nil
}

// Refresh reloads the note list and re-checks the edit target against it.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.store.Load(ctx); err != nil {
		return err
	}
	c.reconcile(ctx)
	return nil
}

// reconcile silently discards the edit state when the targeted note is no
// longer in the loaded list, e.g. because it was deleted from another client.
// No error is surfaced to the user.
func (c *Controller) reconcile(ctx context.Context) {
	if c.target == "" {
		return
	}
	if _, ok := c.store.Get(c.target); !ok {
		c.log.Debug(ctx, "edit target vanished, discarding draft", "note", c.target)
		c.Cancel()
	}
}
