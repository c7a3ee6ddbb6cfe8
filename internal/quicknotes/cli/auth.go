package cli

import (
	"context"
	"fmt"
)

// Register prompts for an email and password and creates a new account.
// The backend signs the fresh account in, so a successful registration
// leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.sessions.SignUp(opCtx, email, password); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created, you are signed in.")
	return nil
}

// Login prompts for credentials and authenticates. Provider-reported errors
// are shown to the user verbatim.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.sessions.SignIn(opCtx, email, password); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Signed in.")
	return nil
}

// Logout signs the current user out; the auth-state handler empties the note
// list and discards any edit in progress.
func (a *App) Logout(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.sessions.SignOut(opCtx); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.CurrentUser()
	if s == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", s.Email, s.UserID)
	return nil
}
