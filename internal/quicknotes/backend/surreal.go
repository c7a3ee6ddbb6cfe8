package backend

import (
	"context"
	"fmt"
	"net/url"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/Jai71/quicknotes/internal/common"
	"github.com/Jai71/quicknotes/internal/logging"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

// Queries are parameterized throughout; user input never reaches the query
// text itself. $auth is bound by the server to the authenticated record user,
// which is what scopes every statement to the caller's own rows.
const (
	listNotesQuery  = `SELECT * FROM notes WHERE user_id = $auth.id ORDER BY created_at DESC`
	createNoteQuery = `CREATE notes SET title = $title, content = $content, user_id = $auth.id, created_at = time::now()`
	updateNoteQuery = `UPDATE $note SET title = $title, content = $content`
)

// SurrealService implements Service over a SurrealDB connection using
// database-level record access for sign-up and sign-in.
type SurrealService struct {
	db        *surrealdb.DB
	namespace string
	database  string
	access    string
	log       logging.Logger
}

// NewSurrealService dials the SurrealDB endpoint and selects the configured
// namespace and database. The connection uses the surrealcbor codec so record
// ids and datetimes survive the round trip intact.
func NewSurrealService(ctx context.Context, endpoint, namespace, database, access string, log logging.Logger) (*SurrealService, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, fmt.Errorf("connect to surrealdb: %w", err)
	}

	if err := db.Use(ctx, namespace, database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", namespace, database, err)
	}

	return &SurrealService{
		db:        db,
		namespace: namespace,
		database:  database,
		access:    access,
		log:       log,
	}, nil
}

func (s *SurrealService) authVars(email, password string) map[string]any {
	return map[string]any{
		"NS":    s.namespace,
		"DB":    s.database,
		"AC":    s.access,
		"email": email,
		"pass":  password,
	}
}

func (s *SurrealService) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	token, err := s.db.SignUp(ctx, s.authVars(email, password))
	if err != nil {
		return nil, &common.BackendError{Op: "signup", Err: err}
	}
	s.log.Debug(ctx, "signed up", "email", email)
	return sessionFromToken(token, email)
}

func (s *SurrealService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	token, err := s.db.SignIn(ctx, s.authVars(email, password))
	if err != nil {
		return nil, &common.BackendError{Op: "signin", Err: err}
	}
	s.log.Debug(ctx, "signed in", "email", email)
	return sessionFromToken(token, email)
}

func (s *SurrealService) SignOut(ctx context.Context) error {
	if err := s.db.Invalidate(ctx); err != nil {
		return &common.BackendError{Op: "signout", Err: err}
	}
	return nil
}

func (s *SurrealService) ListNotes(ctx context.Context) ([]models.Note, error) {
	result, err := surrealdb.Query[[]noteRecord](ctx, s.db, listNotesQuery, nil)
	if err != nil {
		return nil, &common.BackendError{Op: "list", Err: err}
	}
	if result == nil || len(*result) == 0 {
		return nil, nil
	}
	return toNotes((*result)[0].Result), nil
}

func (s *SurrealService) CreateNote(ctx context.Context, draft models.Draft) (*models.Note, error) {
	result, err := surrealdb.Query[[]noteRecord](ctx, s.db, createNoteQuery, map[string]any{
		"title":   draft.Title,
		"content": draft.Content,
	})
	if err != nil {
		return nil, &common.BackendError{Op: "create", Err: err}
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return nil, &common.BackendError{Op: "create", Err: fmt.Errorf("no record returned")}
	}
	n := (*result)[0].Result[0].toNote()
	return &n, nil
}

func (s *SurrealService) UpdateNote(ctx context.Context, id string, draft models.Draft) (*models.Note, error) {
	rid, err := noteRecordID(id)
	if err != nil {
		return nil, &common.BackendError{Op: "update", Err: err}
	}
	result, err := surrealdb.Query[[]noteRecord](ctx, s.db, updateNoteQuery, map[string]any{
		"note":    rid,
		"title":   draft.Title,
		"content": draft.Content,
	})
	if err != nil {
		return nil, &common.BackendError{Op: "update", Err: err}
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return nil, &common.BackendError{Op: "update", Err: fmt.Errorf("note %s not found", id)}
	}
	n := (*result)[0].Result[0].toNote()
	return &n, nil
}

func (s *SurrealService) DeleteNote(ctx context.Context, id string) error {
	rid, err := noteRecordID(id)
	if err != nil {
		return &common.BackendError{Op: "delete", Err: err}
	}
	if _, err := surrealdb.Delete[noteRecord](ctx, s.db, rid); err != nil {
		return &common.BackendError{Op: "delete", Err: err}
	}
	return nil
}

func (s *SurrealService) Close() error {
	return s.db.Close(context.Background())
}
