package csvstore

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
)

// ===========================
// CSV badge AssignmentRepository
// ===========================

// CSVBadgeRepository stores user-badge assignments in hasBadges.csv with
// columns uuid,badge_id. Append-only; uniqueness is the caller's Exists
// check.
type CSVBadgeRepository struct {
	table table
}

func NewBadgeRepository(dir string) badge.AssignmentRepository {
	return &CSVBadgeRepository{
		table: newTable(dir, badgesFile, []string{"uuid", "badge_id"}),
	}
}

func (r *CSVBadgeRepository) Append(a *badge.Assignment) error {
	return r.table.appendRow([]string{a.UserID(), string(a.BadgeID())})
}

func (r *CSVBadgeRepository) Exists(userID string, badgeID badge.ID) (bool, error) {
	rows, err := r.table.load()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row[0] == userID && row[1] == string(badgeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *CSVBadgeRepository) FindByUser(userID string) ([]*badge.Assignment, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	var out []*badge.Assignment
	for _, row := range rows {
		if row[0] == userID {
			out = append(out, badge.ReconstructAssignment(row[0], badge.ID(row[1])))
		}
	}
	return out, nil
}
