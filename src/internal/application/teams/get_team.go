package teams

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Team view use cases
// ===========================

// TeamView is a team with its computed membership details. Members are
// discovered by scanning the user table for the denormalized team id.
type TeamView struct {
	Team        *team.Team
	LeaderName  string
	Members     []*user.User
	MemberCount int
}

// GetTeamUseCase loads one team with leader name and member list resolved.
type GetTeamUseCase interface {
	Execute(teamID string) (*TeamView, error)
}

type getTeamUseCase struct {
	teams team.TeamRepository
	users user.UserRepository
}

func NewGetTeamUseCase(teams team.TeamRepository, users user.UserRepository) GetTeamUseCase {
	return &getTeamUseCase{teams: teams, users: users}
}

func (uc *getTeamUseCase) Execute(teamID string) (*TeamView, error) {
	t, err := uc.teams.FindByID(teamID)
	if err != nil {
		return nil, err
	}
	all, err := uc.users.FindAll()
	if err != nil {
		return nil, err
	}
	return buildView(t, all), nil
}

// ListTeamsUseCase returns every team with membership details resolved.
type ListTeamsUseCase interface {
	Execute() ([]*TeamView, error)
}

type listTeamsUseCase struct {
	teams team.TeamRepository
	users user.UserRepository
}

func NewListTeamsUseCase(teams team.TeamRepository, users user.UserRepository) ListTeamsUseCase {
	return &listTeamsUseCase{teams: teams, users: users}
}

func (uc *listTeamsUseCase) Execute() ([]*TeamView, error) {
	all, err := uc.teams.FindAll()
	if err != nil {
		return nil, err
	}
	users, err := uc.users.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]*TeamView, 0, len(all))
	for _, t := range all {
		views = append(views, buildView(t, users))
	}
	return views, nil
}

// buildView resolves members and the leader's display name from a preloaded
// user table. A leader id matching no user falls back to the raw id.
func buildView(t *team.Team, all []*user.User) *TeamView {
	view := &TeamView{Team: t, LeaderName: t.LeaderID()}
	for _, u := range all {
		if u.TeamID() == t.ID() {
			view.Members = append(view.Members, u)
		}
		if u.ID() == t.LeaderID() {
			view.LeaderName = u.DisplayName()
		}
	}
	view.MemberCount = len(view.Members)
	return view
}
