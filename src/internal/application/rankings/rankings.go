package rankings

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/leaderboard"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Leaderboard use cases
// ===========================

// SupporterLeaderboardUseCase loads the full tables and delegates ranking to
// the leaderboard aggregation. path filters to one giving path; empty ranks
// everything including referral bonus rows.
type SupporterLeaderboardUseCase interface {
	Execute(path string) ([]leaderboard.SupporterEntry, error)
}

type supporterLeaderboardUseCase struct {
	donations donation.DonationRepository
	users     user.UserRepository
}

func NewSupporterLeaderboardUseCase(donations donation.DonationRepository, users user.UserRepository) SupporterLeaderboardUseCase {
	return &supporterLeaderboardUseCase{donations: donations, users: users}
}

func (uc *supporterLeaderboardUseCase) Execute(path string) ([]leaderboard.SupporterEntry, error) {
	rows, err := uc.donations.FindAll()
	if err != nil {
		return nil, err
	}
	users, err := uc.users.FindAll()
	if err != nil {
		return nil, err
	}
	return leaderboard.RankSupporters(rows, users, path), nil
}

// TeamLeaderboardUseCase ranks teams by the summed points of their members.
type TeamLeaderboardUseCase interface {
	Execute() ([]leaderboard.TeamEntry, error)
}

type teamLeaderboardUseCase struct {
	teams     team.TeamRepository
	users     user.UserRepository
	donations donation.DonationRepository
}

func NewTeamLeaderboardUseCase(teams team.TeamRepository, users user.UserRepository, donations donation.DonationRepository) TeamLeaderboardUseCase {
	return &teamLeaderboardUseCase{teams: teams, users: users, donations: donations}
}

func (uc *teamLeaderboardUseCase) Execute() ([]leaderboard.TeamEntry, error) {
	teams, err := uc.teams.FindAll()
	if err != nil {
		return nil, err
	}
	users, err := uc.users.FindAll()
	if err != nil {
		return nil, err
	}
	rows, err := uc.donations.FindAll()
	if err != nil {
		return nil, err
	}
	return leaderboard.RankTeams(teams, users, rows), nil
}
