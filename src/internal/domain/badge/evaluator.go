package badge

import (
	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
)

// ===========================
// Badge eligibility evaluator
// ===========================

// Fixed thresholds.
var (
	supporterDonationCount = 5
	hundredClubPoints      = decimal.NewFromInt(100)
	fiveHundredClubPoints  = decimal.NewFromInt(500)
	volunteerHours         = decimal.NewFromInt(10)
	leaderMemberCount      = 5
)

// Input is everything eligibility depends on for one user.
type Input struct {
	// Donations is the user's full donation set.
	Donations []*donation.Donation

	// TeamID is the user's denormalized team foreign key ("" = unaffiliated).
	TeamID string

	// IsTeamLeader reports whether the user leads a team.
	IsTeamLeader bool

	// TeamMemberCount is the size of the led team (0 when not a leader).
	TeamMemberCount int
}

// Evaluate returns the badges the user currently qualifies for, in
// AllBadgeIDs order. Pure: same input, same output. The set is recomputed
// wholesale; callers decide what to do with already-assigned badges.
func Evaluate(in Input) []ID {
	pathCounts := make(map[donation.Path]int)
	for _, d := range in.Donations {
		pathCounts[d.Path()]++
	}
	totalPoints := donation.TotalPoints(in.Donations)
	totalHours := donation.TotalHours(in.Donations)

	var earned []ID

	if len(in.Donations) >= 1 {
		earned = append(earned, FirstDonation)
	}

	if pathCounts[donation.PathWisdom] >= supporterDonationCount {
		earned = append(earned, WisdomSupporter)
	}
	if pathCounts[donation.PathCourage] >= supporterDonationCount {
		earned = append(earned, CourageSupporter)
	}
	if pathCounts[donation.PathProtection] >= supporterDonationCount {
		earned = append(earned, ProtectionSupporter)
	}
	if pathCounts[donation.PathService] >= supporterDonationCount {
		earned = append(earned, ServiceSupporter)
	}

	if pathCounts[donation.PathWisdom] > 0 &&
		pathCounts[donation.PathCourage] > 0 &&
		pathCounts[donation.PathProtection] > 0 {
		earned = append(earned, AllPaths)
	}

	if totalPoints.GreaterThanOrEqual(hundredClubPoints) {
		earned = append(earned, HundredClub)
	}
	if totalPoints.GreaterThanOrEqual(fiveHundredClubPoints) {
		earned = append(earned, FiveHundredClub)
	}

	if totalHours.GreaterThanOrEqual(volunteerHours) {
		earned = append(earned, ServiceVolunteer)
	}

	if in.TeamID != "" {
		earned = append(earned, TeamPlayer)
	}
	if in.IsTeamLeader && in.TeamMemberCount >= leaderMemberCount {
		earned = append(earned, TeamLeader)
	}

	return earned
}
