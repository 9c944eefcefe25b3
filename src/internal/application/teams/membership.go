package teams

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Membership use cases
// ===========================

type JoinTeamCommand struct {
	TeamID string
	UserID string
}

// JoinTeamUseCase sets the user's team foreign key. Joining while already on
// another team moves the user; there is no explicit leave required first.
type JoinTeamUseCase interface {
	Execute(cmd JoinTeamCommand) error
}

type joinTeamUseCase struct {
	teams team.TeamRepository
	users user.UserRepository
}

func NewJoinTeamUseCase(teams team.TeamRepository, users user.UserRepository) JoinTeamUseCase {
	return &joinTeamUseCase{teams: teams, users: users}
}

func (uc *joinTeamUseCase) Execute(cmd JoinTeamCommand) error {
	t, err := uc.teams.FindByID(cmd.TeamID)
	if err != nil {
		return err
	}
	u, err := uc.users.FindByID(cmd.UserID)
	if err != nil {
		return err
	}
	if err := u.JoinTeam(t.ID()); err != nil {
		return err
	}
	return uc.users.Save(u)
}

type LeaveTeamCommand struct {
	UserID string
}

// LeaveTeamUseCase clears the user's team foreign key, whichever team it
// points at. The team row is kept even when its last member leaves, and a
// departing leader keeps the leader reference until leadership is
// transferred. Leaving while unaffiliated is a no-op.
type LeaveTeamUseCase interface {
	Execute(cmd LeaveTeamCommand) error
}

type leaveTeamUseCase struct {
	users user.UserRepository
}

func NewLeaveTeamUseCase(users user.UserRepository) LeaveTeamUseCase {
	return &leaveTeamUseCase{users: users}
}

func (uc *leaveTeamUseCase) Execute(cmd LeaveTeamCommand) error {
	u, err := uc.users.FindByID(cmd.UserID)
	if err != nil {
		return err
	}
	u.LeaveTeam()
	return uc.users.Save(u)
}

type TransferLeadershipCommand struct {
	TeamID      string
	NewLeaderID string
}

// TransferLeadershipUseCase hands the team to a new leader. The new leader
// must exist but is not required to be a member.
type TransferLeadershipUseCase interface {
	Execute(cmd TransferLeadershipCommand) error
}

type transferLeadershipUseCase struct {
	teams team.TeamRepository
	users user.UserRepository
}

func NewTransferLeadershipUseCase(teams team.TeamRepository, users user.UserRepository) TransferLeadershipUseCase {
	return &transferLeadershipUseCase{teams: teams, users: users}
}

func (uc *transferLeadershipUseCase) Execute(cmd TransferLeadershipCommand) error {
	t, err := uc.teams.FindByID(cmd.TeamID)
	if err != nil {
		return err
	}
	newLeader, err := uc.users.FindByID(cmd.NewLeaderID)
	if err != nil {
		return err
	}
	if err := t.TransferLeadership(newLeader.ID()); err != nil {
		return err
	}
	return uc.teams.Save(t)
}
