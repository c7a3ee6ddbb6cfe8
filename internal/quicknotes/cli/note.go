package cli

import (
	"context"
	"fmt"
)

// Add prompts for a new note's title and content and submits it. The note's
// creation timestamp is assigned by the backend.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title (optional)", a.out)
	if err != nil {
		return err
	}

	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	a.form.SetDraft(title, content)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.form.Submit(opCtx); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Note saved.")
	return nil
}

// Edit prompts for a note id, prefills the draft from the note's current
// values, lets the user revise them, and submits the update. Pressing Enter
// on an empty field keeps the current value.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", a.out)
	if err != nil {
		return err
	}

	if err := a.form.Edit(id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	draft := a.form.Draft()

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", draft.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = draft.Title
	}

	content, err := getMultiline(a.reader, "Enter content (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = draft.Content
	}

	a.form.SetDraft(title, content)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.form.Submit(opCtx); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Note updated.")
	return nil
}

// CancelEdit abandons the edit in progress.
func (a *App) CancelEdit(ctx context.Context) error {
	if !a.form.Editing() {
		fmt.Fprintln(a.out, "Nothing to cancel.")
		return nil
	}
	a.form.Cancel()
	fmt.Fprintln(a.out, "Edit cancelled.")
	return nil
}

// Delete prompts for a note id and removes the note.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.form.Remove(opCtx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Note deleted.")
	return nil
}
