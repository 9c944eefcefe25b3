// Package csvstore persists every table as a headered CSV file under one
// data directory. Reads load the whole file; writes rewrite it wholesale.
// There is no locking: concurrent writers can lose updates, which matches
// the deployment assumption of a single process and light traffic.
package csvstore

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/hopeworks/impact_hub/src/internal/domain/shared"
)

// Table file names, fixed by the data layout.
const (
	usersFile     = "users.csv"
	donationsFile = "donations.csv"
	teamsFile     = "teams.csv"
	referralsFile = "referrals.csv"
	badgesFile    = "hasBadges.csv"
	wallFile      = "hope_wall.csv"
)

const ErrCodeCorruptedTable shared.ErrorCode = "CORRUPTED_TABLE"

// ErrCorruptedTable a stored row failed to parse back into its domain type.
var ErrCorruptedTable = &shared.DomainError{
	Code:    ErrCodeCorruptedTable,
	Message: "stored table row is corrupted",
}

// table is one CSV file with a fixed header.
type table struct {
	path   string
	header []string
}

func newTable(dir, name string, header []string) table {
	return table{path: filepath.Join(dir, name), header: header}
}

// load reads every data row. A missing file is an empty table. The header
// row is skipped, not validated: column meaning is positional. Rows written
// under older layouts may be missing trailing columns; they are padded with
// empty cells so parsers see the full width.
func (t table) load() ([][]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, ErrCorruptedTable.WithContext("file", t.path, "cause", err.Error())
	}
	if len(records) == 0 {
		return nil, nil
	}
	rows := records[1:]
	for i, row := range rows {
		if len(row) > len(t.header) {
			return nil, ErrCorruptedTable.WithContext("file", t.path, "columns", len(row))
		}
		for len(row) < len(t.header) {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows, nil
}

// store rewrites the whole file, header included.
func (t table) store(rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// appendRow loads, appends one row and rewrites. Used by append-only tables.
func (t table) appendRow(row []string) error {
	rows, err := t.load()
	if err != nil {
		return err
	}
	return t.store(append(rows, row))
}
