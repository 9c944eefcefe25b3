package badge

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
)

func monetary(t *testing.T, path donation.Path, amount int64) *donation.Donation {
	t.Helper()
	d, err := donation.NewMonetaryDonation("u1", decimal.NewFromInt(amount), path, "2025-01-01T00:00:00Z")
	require.NoError(t, err)
	return d
}

func volunteer(t *testing.T, hours int64) *donation.Donation {
	t.Helper()
	d, err := donation.NewVolunteerEntry("u1", decimal.NewFromInt(hours), "2025-01-01")
	require.NoError(t, err)
	return d
}

func TestEvaluate_NoDonations_NoTeam(t *testing.T) {
	earned := Evaluate(Input{})
	assert.Empty(t, earned)
}

func TestEvaluate_FirstDonation(t *testing.T) {
	in := Input{Donations: []*donation.Donation{monetary(t, donation.PathJustice, 10)}}

	earned := Evaluate(in)

	assert.Contains(t, earned, FirstDonation)
	assert.NotContains(t, earned, AllPaths)
}

func TestEvaluate_FiveWisdomOnly_EarnsSupporterNotAllPaths(t *testing.T) {
	// Exactly 5 WISDOM donations and nothing else
	var rows []*donation.Donation
	for i := 0; i < 5; i++ {
		rows = append(rows, monetary(t, donation.PathWisdom, 10))
	}
	earned := Evaluate(Input{Donations: rows})

	assert.Contains(t, earned, FirstDonation)
	assert.Contains(t, earned, WisdomSupporter)
	assert.NotContains(t, earned, AllPaths)
	assert.NotContains(t, earned, CourageSupporter)
}

func TestEvaluate_SupporterBadgesPerPathIndependently(t *testing.T) {
	cases := []struct {
		path  donation.Path
		badge ID
	}{
		{donation.PathWisdom, WisdomSupporter},
		{donation.PathCourage, CourageSupporter},
		{donation.PathProtection, ProtectionSupporter},
		{donation.PathService, ServiceSupporter},
	}
	for _, tc := range cases {
		t.Run(string(tc.path), func(t *testing.T) {
			var rows []*donation.Donation
			for i := 0; i < 5; i++ {
				rows = append(rows, monetary(t, tc.path, 1))
			}
			earned := Evaluate(Input{Donations: rows})
			assert.Contains(t, earned, tc.badge)
		})
	}
}

func TestEvaluate_AllPaths_RegardlessOfCounts(t *testing.T) {
	// One donation to each of WISDOM, COURAGE, PROTECTION is enough
	rows := []*donation.Donation{
		monetary(t, donation.PathWisdom, 5),
		monetary(t, donation.PathCourage, 5),
		monetary(t, donation.PathProtection, 5),
	}
	earned := Evaluate(Input{Donations: rows})

	assert.Contains(t, earned, AllPaths)
	assert.NotContains(t, earned, WisdomSupporter)
}

func TestEvaluate_ClubBadgesByCumulativePoints(t *testing.T) {
	// 100 units -> 150 points: hundred_club only
	earned := Evaluate(Input{Donations: []*donation.Donation{monetary(t, donation.PathJustice, 100)}})
	assert.Contains(t, earned, HundredClub)
	assert.NotContains(t, earned, FiveHundredClub)

	// 400 units -> 600 points: both clubs
	earned = Evaluate(Input{Donations: []*donation.Donation{monetary(t, donation.PathJustice, 400)}})
	assert.Contains(t, earned, HundredClub)
	assert.Contains(t, earned, FiveHundredClub)
}

func TestEvaluate_VolunteerBadgeAtTenHours(t *testing.T) {
	earned := Evaluate(Input{Donations: []*donation.Donation{volunteer(t, 9)}})
	assert.NotContains(t, earned, ServiceVolunteer)

	earned = Evaluate(Input{Donations: []*donation.Donation{volunteer(t, 10)}})
	assert.Contains(t, earned, ServiceVolunteer)
}

func TestEvaluate_TeamBadges(t *testing.T) {
	// Membership alone earns team_player
	earned := Evaluate(Input{TeamID: "team1"})
	assert.Contains(t, earned, TeamPlayer)
	assert.NotContains(t, earned, TeamLeader)

	// Leading a team of 5 earns team_leader
	earned = Evaluate(Input{TeamID: "team1", IsTeamLeader: true, TeamMemberCount: 5})
	assert.Contains(t, earned, TeamLeader)

	// Leading a smaller team does not
	earned = Evaluate(Input{TeamID: "team1", IsTeamLeader: true, TeamMemberCount: 4})
	assert.NotContains(t, earned, TeamLeader)
}

func TestEvaluate_Idempotent(t *testing.T) {
	var rows []*donation.Donation
	for i, p := range []donation.Path{donation.PathWisdom, donation.PathCourage, donation.PathProtection} {
		for j := 0; j <= i; j++ {
			rows = append(rows, monetary(t, p, 50))
		}
	}
	rows = append(rows, volunteer(t, 12))
	in := Input{Donations: rows, TeamID: "team1", IsTeamLeader: true, TeamMemberCount: 6}

	first := Evaluate(in)
	second := Evaluate(in)

	assert.Equal(t, fmt.Sprint(first), fmt.Sprint(second))
	assert.Equal(t, first, second)
}
