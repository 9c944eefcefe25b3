package team

// ===========================
// TeamRepository interface
// ===========================

// TeamRepository is the storage port for team records.
type TeamRepository interface {
	// Save inserts or updates by team id.
	Save(t *Team) error

	// FindByID returns ErrTeamNotFound when no row matches.
	FindByID(id string) (*Team, error)

	// FindByLeader returns the team led by the user, or ErrTeamNotFound.
	FindByLeader(leaderID string) (*Team, error)

	// FindAll returns every team row.
	FindAll() ([]*Team, error)
}
