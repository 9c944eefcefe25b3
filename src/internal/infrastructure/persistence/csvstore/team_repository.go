package csvstore

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
)

// ===========================
// CSV TeamRepository
// ===========================

// CSVTeamRepository stores teams in teams.csv with columns
// team_id,name,leader_uuid. Membership lives on the user table.
type CSVTeamRepository struct {
	table table
}

func NewTeamRepository(dir string) team.TeamRepository {
	return &CSVTeamRepository{
		table: newTable(dir, teamsFile, []string{"team_id", "name", "leader_uuid"}),
	}
}

func teamToRow(t *team.Team) []string {
	return []string{t.ID(), t.Name(), t.LeaderID()}
}

func rowToTeam(row []string) *team.Team {
	return team.ReconstructTeam(row[0], row[1], row[2])
}

func (r *CSVTeamRepository) Save(t *team.Team) error {
	rows, err := r.table.load()
	if err != nil {
		return err
	}
	updated := false
	for i, row := range rows {
		if row[0] == t.ID() {
			rows[i] = teamToRow(t)
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, teamToRow(t))
	}
	return r.table.store(rows)
}

func (r *CSVTeamRepository) FindByID(id string) (*team.Team, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[0] == id {
			return rowToTeam(row), nil
		}
	}
	return nil, team.ErrTeamNotFound.WithContext("team_id", id)
}

func (r *CSVTeamRepository) FindByLeader(leaderID string) (*team.Team, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[2] == leaderID {
			return rowToTeam(row), nil
		}
	}
	return nil, team.ErrTeamNotFound.WithContext("leader_id", leaderID)
}

func (r *CSVTeamRepository) FindAll() ([]*team.Team, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	teams := make([]*team.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, rowToTeam(row))
	}
	return teams, nil
}
