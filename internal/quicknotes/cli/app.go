package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Jai71/quicknotes/internal/logging"
	"github.com/Jai71/quicknotes/internal/quicknotes/backend"
	"github.com/Jai71/quicknotes/internal/quicknotes/config"
	"github.com/Jai71/quicknotes/internal/quicknotes/form"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
	"github.com/Jai71/quicknotes/internal/quicknotes/notes"
	"github.com/Jai71/quicknotes/internal/quicknotes/session"
	"github.com/Jai71/quicknotes/internal/report"
)

// Input seams used by the command handlers; tests replace them with stubs.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// App holds the running client: configuration, the wired core components,
// and the I/O endpoints of the REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	reporter report.Reporter

	backend  backend.Service
	sessions *session.Manager
	store    *notes.Store
	form     *form.Controller

	reader *bufio.Reader
	out    io.Writer
}

// NewApp connects to the configured backend and wires the client together.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	b, err := backend.NewSurrealService(ctx, cfg.Endpoint, cfg.Namespace, cfg.Database, cfg.Access, log)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(b, log)
	store := notes.NewStore(b, sessions, log)

	return &App{
		config:   cfg,
		log:      log,
		reporter: report.New(log),
		backend:  b,
		sessions: sessions,
		store:    store,
		form:     form.NewController(store, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run subscribes to auth-state changes, starts the REPL, and tears the
// subscription down on exit.
func (a *App) Run(ctx context.Context) error {
	defer a.backend.Close()

	if err := a.sessions.Subscribe(a.onAuthChange); err != nil {
		return err
	}
	defer a.sessions.Unsubscribe()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
	return nil
}

// onAuthChange reloads the note list whenever the session changes: a sign-in
// pulls the new user's notes, a sign-out empties the list and drops any edit
// in progress.
func (a *App) onAuthChange(ctx context.Context, s *models.Session) {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.form.Refresh(opCtx); err != nil {
		a.log.Error(ctx, "note reload after auth change failed", "error", err)
	}
}

// opCtx derives the per-request context with the configured timeout.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.CurrentUser() != nil
}

func (a *App) getStatus() string {
	s := a.sessions.CurrentUser()
	if s == nil {
		return ""
	}
	status := "(" + s.Email
	if a.form.Editing() {
		status += " editing " + a.form.Target()
	}
	return status + ")"
}
