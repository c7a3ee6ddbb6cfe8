package notes

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jai71/quicknotes/internal/common"
	"github.com/Jai71/quicknotes/internal/logging"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
	"github.com/Jai71/quicknotes/internal/quicknotes/session"
)

// fakeService is an in-memory stand-in for the hosted data service. Mutations
// operate on the remote slice so a reload observes them, mirroring how the
// real backend behaves.
type fakeService struct {
	session *models.Session
	remote  []models.Note

	listCalls   int
	listErr     error
	createCalls int
	createErr   error
	nextID      int
}

func (f *fakeService) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeService) SignOut(ctx context.Context) error { return nil }

func (f *fakeService) ListNotes(ctx context.Context) ([]models.Note, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Note, len(f.remote))
	copy(out, f.remote)
	return out, nil
}

func (f *fakeService) CreateNote(ctx context.Context, d models.Draft) (*models.Note, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	n := models.Note{
		ID:        noteID(f.nextID),
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: time.Now(),
	}
	f.remote = append(f.remote, n)
	return &n, nil
}

func (f *fakeService) UpdateNote(ctx context.Context, id string, d models.Draft) (*models.Note, error) {
	for i := range f.remote {
		if f.remote[i].ID == id {
			f.remote[i].Title = d.Title
			f.remote[i].Content = d.Content
			return &f.remote[i], nil
		}
	}
	return nil, &common.BackendError{Op: "update", Err: errors.New("note not found")}
}

func (f *fakeService) DeleteNote(ctx context.Context, id string) error {
	for i := range f.remote {
		if f.remote[i].ID == id {
			f.remote = append(f.remote[:i], f.remote[i+1:]...)
			return nil
		}
	}
	return &common.BackendError{Op: "delete", Err: errors.New("note not found")}
}

func (f *fakeService) Close() error { return nil }

func noteID(n int) string {
	return "notes:" + string(rune('a'+n))
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T, svc *fakeService, signedIn bool) *Store {
	t.Helper()
	sm := session.NewManager(svc, discardLogger())
	if signedIn {
		svc.session = &models.Session{UserID: "user:alice", Email: "alice@example.com"}
		require.NoError(t, sm.SignIn(context.Background(), "alice@example.com", "pw"))
	}
	return NewStore(svc, sm, discardLogger())
}

func TestStore_Load_NoSessionClearsList(t *testing.T) {
	svc := &fakeService{remote: []models.Note{{ID: "notes:x", Content: "c"}}}
	st := newTestStore(t, svc, false)
	st.list = []models.Note{{ID: "notes:stale"}}

	require.NoError(t, st.Load(context.Background()))
	require.Empty(t, st.Notes())
	require.Zero(t, svc.listCalls)
}

func TestStore_Load_OrdersNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := &fakeService{remote: []models.Note{
		{ID: "notes:old", CreatedAt: base},
		{ID: "notes:new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "notes:mid", CreatedAt: base.Add(time.Hour)},
	}}
	st := newTestStore(t, svc, true)

	require.NoError(t, st.Load(context.Background()))

	got := st.Notes()
	require.Len(t, got, 3)
	require.Equal(t, "notes:new", got[0].ID)
	require.Equal(t, "notes:mid", got[1].ID)
	require.Equal(t, "notes:old", got[2].ID)
}

func TestStore_Load_Idempotent(t *testing.T) {
	svc := &fakeService{remote: []models.Note{{ID: "notes:a", Title: "A", Content: "B"}}}
	st := newTestStore(t, svc, true)

	require.NoError(t, st.Load(context.Background()))
	first := st.Notes()
	require.NoError(t, st.Load(context.Background()))
	require.Equal(t, first, st.Notes())
}

func TestStore_Create_RoundTrip(t *testing.T) {
	svc := &fakeService{}
	st := newTestStore(t, svc, true)

	require.NoError(t, st.Create(context.Background(), models.Draft{Title: "A", Content: "B"}))

	got := st.Notes()
	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].Title)
	require.Equal(t, "B", got[0].Content)
	require.False(t, got[0].CreatedAt.IsZero())
	require.NotEmpty(t, got[0].ID)
}

func TestStore_Create_NoSessionFailsWithoutWrite(t *testing.T) {
	svc := &fakeService{}
	st := newTestStore(t, svc, false)

	err := st.Create(context.Background(), models.Draft{Content: "B"})
	require.ErrorIs(t, err, common.ErrAuthRequired)
	require.Zero(t, svc.createCalls)
	require.Empty(t, svc.remote)
}

func TestStore_Create_BackendErrorDoesNotReload(t *testing.T) {
	cause := &common.BackendError{Op: "create", Err: errors.New("network down")}
	svc := &fakeService{createErr: cause}
	st := newTestStore(t, svc, true)

	err := st.Create(context.Background(), models.Draft{Content: "B"})
	require.ErrorIs(t, err, cause)
	require.EqualError(t, err, "network down")
	require.Zero(t, svc.listCalls)
}

func TestStore_Update_ReplacesContentAndReloads(t *testing.T) {
	svc := &fakeService{}
	st := newTestStore(t, svc, true)
	require.NoError(t, st.Create(context.Background(), models.Draft{Title: "A", Content: "B"}))
	id := st.Notes()[0].ID

	require.NoError(t, st.Update(context.Background(), id, models.Draft{Title: "A2", Content: "B2"}))

	n, ok := st.Get(id)
	require.True(t, ok)
	require.Equal(t, "A2", n.Title)
	require.Equal(t, "B2", n.Content)
}

func TestStore_Delete_RemovesAndReloads(t *testing.T) {
	svc := &fakeService{}
	st := newTestStore(t, svc, true)
	require.NoError(t, st.Create(context.Background(), models.Draft{Content: "B"}))
	id := st.Notes()[0].ID

	require.NoError(t, st.Delete(context.Background(), id))
	require.Empty(t, st.Notes())
	_, ok := st.Get(id)
	require.False(t, ok)
}

func TestStore_MutationsRequireSession(t *testing.T) {
	svc := &fakeService{}
	st := newTestStore(t, svc, false)
	ctx := context.Background()

	require.ErrorIs(t, st.Update(ctx, "notes:a", models.Draft{Content: "x"}), common.ErrAuthRequired)
	require.ErrorIs(t, st.Delete(ctx, "notes:a"), common.ErrAuthRequired)
}
