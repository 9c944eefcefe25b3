package csvstore

import (
	"strconv"
	"time"

	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// ===========================
// CSV wall MessageRepository
// ===========================

// CSVWallRepository stores wall submissions in hope_wall.csv with columns
// id,display_name,message,language,created_at,approved. The six default
// messages are never written here.
type CSVWallRepository struct {
	table table
}

func NewWallRepository(dir string) wall.MessageRepository {
	return &CSVWallRepository{
		table: newTable(dir, wallFile, []string{"id", "display_name", "message", "language", "created_at", "approved"}),
	}
}

func messageToRow(m *wall.Message) []string {
	return []string{
		m.ID(),
		m.DisplayName(),
		m.Text(),
		m.Language(),
		m.CreatedAt().UTC().Format(time.RFC3339),
		strconv.FormatBool(m.Approved()),
	}
}

func rowToMessage(t table, row []string) (*wall.Message, error) {
	createdAt, err := time.Parse(time.RFC3339, row[4])
	if err != nil {
		return nil, ErrCorruptedTable.WithContext("file", t.path, "column", "created_at", "value", row[4])
	}
	approved, _ := strconv.ParseBool(row[5])
	return wall.ReconstructMessage(row[0], row[1], row[2], row[3], createdAt, approved), nil
}

func (r *CSVWallRepository) Append(m *wall.Message) error {
	return r.table.appendRow(messageToRow(m))
}

func (r *CSVWallRepository) FindApproved() ([]*wall.Message, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	var out []*wall.Message
	for _, m := range all {
		if m.Approved() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *CSVWallRepository) FindAll() ([]*wall.Message, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	out := make([]*wall.Message, 0, len(rows))
	for _, row := range rows {
		m, err := rowToMessage(r.table, row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
