package leaderboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

func monetary(t *testing.T, userID string, path donation.Path, amount int64) *donation.Donation {
	t.Helper()
	d, err := donation.NewMonetaryDonation(userID, decimal.NewFromInt(amount), path, "2025-01-01T00:00:00Z")
	require.NoError(t, err)
	return d
}

func testUsers() []*user.User {
	return []*user.User{
		user.ReconstructUser("u1", "alice@example.com", "x", "Alice", "Ames", "t1"),
		user.ReconstructUser("u2", "bob@example.com", "x", "Bob", "", "t1"),
		user.ReconstructUser("u3", "carol@example.com", "x", "Carol", "Cole", ""),
	}
}

func TestRankSupporters_TotalsAndOrder(t *testing.T) {
	donations := []*donation.Donation{
		monetary(t, "u1", donation.PathWisdom, 100),  // 150 points
		monetary(t, "u1", donation.PathCourage, 20),  // 30 points
		monetary(t, "u3", donation.PathJustice, 200), // 300 points
	}

	entries := RankSupporters(donations, testUsers(), "")

	require.Len(t, entries, 2)
	// Sorted descending by total points
	assert.Equal(t, "u3", entries[0].UserID)
	assert.True(t, entries[0].TotalPoints.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "u1", entries[1].UserID)
	assert.True(t, entries[1].TotalPoints.Equal(decimal.NewFromInt(180)))
	assert.True(t, entries[1].TotalAmount.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 2, entries[1].TotalDonations)

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].TotalPoints.GreaterThanOrEqual(entries[i].TotalPoints),
			"ranking must be non-increasing by points")
	}
}

func TestRankSupporters_PathFilter(t *testing.T) {
	donations := []*donation.Donation{
		monetary(t, "u1", donation.PathWisdom, 100),
		monetary(t, "u1", donation.PathCourage, 500),
		monetary(t, "u3", donation.PathCourage, 10),
	}

	entries := RankSupporters(donations, testUsers(), "WISDOM")

	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.True(t, entries[0].TotalPoints.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "WISDOM", entries[0].PrimaryPath)
}

func TestRankSupporters_PrimaryPathTieBreaksLexicographically(t *testing.T) {
	// One WISDOM and one COURAGE donation: COURAGE < WISDOM
	donations := []*donation.Donation{
		monetary(t, "u1", donation.PathWisdom, 10),
		monetary(t, "u1", donation.PathCourage, 10),
	}

	entries := RankSupporters(donations, testUsers(), "")

	require.Len(t, entries, 1)
	assert.Equal(t, "COURAGE", entries[0].PrimaryPath)
}

func TestRankSupporters_DisplayNameFallbacks(t *testing.T) {
	donations := []*donation.Donation{
		monetary(t, "u1", donation.PathWisdom, 10),
		monetary(t, "u2", donation.PathWisdom, 10),
		monetary(t, "ghost", donation.PathWisdom, 10),
	}

	entries := RankSupporters(donations, testUsers(), "")
	byID := map[string]SupporterEntry{}
	for _, e := range entries {
		byID[e.UserID] = e
	}

	assert.Equal(t, "Alice Ames", byID["u1"].DisplayName)
	// Missing last name falls back to email
	assert.Equal(t, "bob@example.com", byID["u2"].DisplayName)
	// Missing user row falls back to the raw id
	assert.Equal(t, "ghost", byID["ghost"].DisplayName)
}

func TestRankTeams_SumsMemberPoints(t *testing.T) {
	teams := []*team.Team{
		team.ReconstructTeam("t1", "Hope Warriors", "u1"),
		team.ReconstructTeam("t2", "Empty Crew", "u3"),
	}
	donations := []*donation.Donation{
		monetary(t, "u1", donation.PathWisdom, 100), // 150
		monetary(t, "u2", donation.PathCourage, 60), // 90
		monetary(t, "u3", donation.PathJustice, 40), // not on t1
	}

	entries := RankTeams(teams, testUsers(), donations)

	require.Len(t, entries, 2)
	assert.Equal(t, "t1", entries[0].TeamID)
	assert.True(t, entries[0].TotalPoints.Equal(decimal.NewFromInt(240)))
	assert.Equal(t, 2, entries[0].MemberCount)
	assert.Equal(t, "Alice Ames", entries[0].LeaderName)

	// u3 is unaffiliated, so t2 has no members and zero points
	assert.Equal(t, "t2", entries[1].TeamID)
	assert.Equal(t, 0, entries[1].MemberCount)
	assert.True(t, entries[1].TotalPoints.IsZero())
}
