package teams

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// IDGenerator produces a short alphanumeric identifier of the given length.
type IDGenerator func(length int) string

// ===========================
// Create team use case
// ===========================

type CreateTeamCommand struct {
	Name     string
	LeaderID string
}

type CreateTeamResult struct {
	Team *team.Team
}

// CreateTeamUseCase creates a team and enrolls the leader as its first
// member. A leader already on another team is moved, not duplicated.
type CreateTeamUseCase interface {
	Execute(cmd CreateTeamCommand) (*CreateTeamResult, error)
}

type createTeamUseCase struct {
	teams team.TeamRepository
	users user.UserRepository
	newID IDGenerator
}

func NewCreateTeamUseCase(teams team.TeamRepository, users user.UserRepository, newID IDGenerator) CreateTeamUseCase {
	return &createTeamUseCase{teams: teams, users: users, newID: newID}
}

func (uc *createTeamUseCase) Execute(cmd CreateTeamCommand) (*CreateTeamResult, error) {
	leader, err := uc.users.FindByID(cmd.LeaderID)
	if err != nil {
		return nil, err
	}

	t, err := team.NewTeam(uc.newID(team.TeamIDLength), cmd.Name, leader.ID())
	if err != nil {
		return nil, err
	}
	if err := uc.teams.Save(t); err != nil {
		return nil, err
	}

	if err := leader.JoinTeam(t.ID()); err != nil {
		return nil, err
	}
	if err := uc.users.Save(leader); err != nil {
		return nil, err
	}

	return &CreateTeamResult{Team: t}, nil
}
