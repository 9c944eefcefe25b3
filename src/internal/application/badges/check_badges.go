package badges

import (
	"errors"

	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Check badges use case
// ===========================

type CheckBadgesResult struct {
	// NewlyEarned are the badges persisted by this check, in evaluation order.
	NewlyEarned []badge.ID

	// Held is the user's full badge set after the check.
	Held []badge.ID
}

// CheckBadgesUseCase recomputes eligibility from the user's current state and
// persists any badge not yet held. Badges are never revoked.
type CheckBadgesUseCase interface {
	Execute(userID string) (*CheckBadgesResult, error)
}

type checkBadgesUseCase struct {
	assignments badge.AssignmentRepository
	donations   donation.DonationRepository
	users       user.UserRepository
	teams       team.TeamRepository
}

func NewCheckBadgesUseCase(
	assignments badge.AssignmentRepository,
	donations donation.DonationRepository,
	users user.UserRepository,
	teams team.TeamRepository,
) CheckBadgesUseCase {
	return &checkBadgesUseCase{assignments: assignments, donations: donations, users: users, teams: teams}
}

func (uc *checkBadgesUseCase) Execute(userID string) (*CheckBadgesResult, error) {
	u, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.donations.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	in := badge.Input{
		Donations: rows,
		TeamID:    u.TeamID(),
	}

	led, err := uc.teams.FindByLeader(userID)
	switch {
	case err == nil:
		in.IsTeamLeader = true
		count, err := uc.countMembers(led.ID())
		if err != nil {
			return nil, err
		}
		in.TeamMemberCount = count
	case !errors.Is(err, team.ErrTeamNotFound):
		return nil, err
	}

	earned := badge.Evaluate(in)

	var newly []badge.ID
	for _, id := range earned {
		exists, err := uc.assignments.Exists(userID, id)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		a, err := badge.NewAssignment(userID, id)
		if err != nil {
			return nil, err
		}
		if err := uc.assignments.Append(a); err != nil {
			return nil, err
		}
		newly = append(newly, id)
	}

	held, err := uc.heldBadges(userID)
	if err != nil {
		return nil, err
	}
	return &CheckBadgesResult{NewlyEarned: newly, Held: held}, nil
}

func (uc *checkBadgesUseCase) countMembers(teamID string) (int, error) {
	all, err := uc.users.FindAll()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, u := range all {
		if u.TeamID() == teamID {
			count++
		}
	}
	return count, nil
}

func (uc *checkBadgesUseCase) heldBadges(userID string) ([]badge.ID, error) {
	assignments, err := uc.assignments.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	held := make([]badge.ID, 0, len(assignments))
	for _, a := range assignments {
		held = append(held, a.BadgeID())
	}
	return held, nil
}
