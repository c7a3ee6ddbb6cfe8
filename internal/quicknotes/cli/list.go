package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

// List refreshes the note list from the backend and renders it. Rendering
// runs inside a guard: a panic there is reported instead of crashing the
// REPL, and the user is told how to recover.
func (a *App) List(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.form.Refresh(opCtx); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	return a.renderGuard(ctx, "render:list", func() {
		renderNotes(a.out, a.store.Notes())
	})
}

// Retry remounts the view after a rendering failure: the edit state is
// discarded and the list is refreshed and rendered from scratch.
func (a *App) Retry(ctx context.Context) error {
	a.form.Cancel()
	return a.List(ctx)
}

// renderGuard runs fn, converting a panic into a reported error plus a
// recovery hint for the user.
func (a *App) renderGuard(ctx context.Context, label string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render failed: %v", r)
			a.reporter.Report(ctx, label, err)
			fmt.Fprintln(a.out, "Something went wrong while displaying your notes.")
			fmt.Fprintln(a.out, "Type 'retry' to reload the view.")
		}
	}()
	fn()
	return nil
}

// renderNotes prints the notes newest first, one block per note.
func renderNotes(w io.Writer, list []models.Note) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No notes yet.")
		return
	}

	fmt.Fprintf(w, "%d note(s):\n", len(list))
	for _, n := range list {
		fmt.Fprintf(w, "--- %s", n.ID)
		if n.Title != "" {
			fmt.Fprintf(w, "  %q", n.Title)
		}
		fmt.Fprintln(w)
		if !n.CreatedAt.IsZero() {
			fmt.Fprintf(w, "    created %s\n", n.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(w, "    %s\n", n.Content)
	}
}
