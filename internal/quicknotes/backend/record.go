package backend

import (
	"fmt"
	"strings"

	sdbmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

// notesTable is the single table this client reads and writes.
const notesTable = "notes"

// noteRecord mirrors a row of the notes table as SurrealDB returns it.
// Pointer fields stay nil when the backend omits them.
type noteRecord struct {
	ID        *sdbmodels.RecordID       `json:"id,omitempty"`
	UserID    *sdbmodels.RecordID       `json:"user_id,omitempty"`
	Title     string                    `json:"title"`
	Content   string                    `json:"content"`
	CreatedAt *sdbmodels.CustomDateTime `json:"created_at,omitempty"`
}

func (r noteRecord) toNote() models.Note {
	n := models.Note{Title: r.Title, Content: r.Content}
	if r.ID != nil {
		n.ID = r.ID.String()
	}
	if r.CreatedAt != nil {
		n.CreatedAt = r.CreatedAt.Time
	}
	return n
}

func toNotes(records []noteRecord) []models.Note {
	notes := make([]models.Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, r.toNote())
	}
	return notes
}

// noteRecordID converts the opaque note id the client carries ("notes:<key>")
// back into a record id for the notes table.
func noteRecordID(id string) (sdbmodels.RecordID, error) {
	table, key, ok := strings.Cut(id, ":")
	if !ok || table != notesTable || key == "" {
		return sdbmodels.RecordID{}, fmt.Errorf("malformed note id %q", id)
	}
	return sdbmodels.NewRecordID(notesTable, key), nil
}
