package rankings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/infrastructure/persistence/memstore"
)

func TestSupporterLeaderboard_RanksByPointsAndFiltersByPath(t *testing.T) {
	// Arrange
	users := memstore.NewUserRepository()
	donations := memstore.NewDonationRepository()
	require.NoError(t, users.Save(user.ReconstructUser("alice001", "a@example.com", "hash", "Alice", "Adams", "")))
	require.NoError(t, users.Save(user.ReconstructUser("bob00001", "b@example.com", "hash", "Bob", "Brown", "")))

	give := func(userID string, amount int64, path donation.Path) {
		d, err := donation.NewMonetaryDonation(userID, decimal.NewFromInt(amount), path, "2025-06-01T00:00:00Z")
		require.NoError(t, err)
		require.NoError(t, donations.Append(d))
	}
	give("alice001", 100, donation.PathWisdom)
	give("bob00001", 50, donation.PathWisdom)
	give("bob00001", 200, donation.PathCourage)
	uc := NewSupporterLeaderboardUseCase(donations, users)

	// Act
	all, err := uc.Execute("")
	require.NoError(t, err)
	wisdom, err := uc.Execute("WISDOM")
	require.NoError(t, err)

	// Assert: Bob leads overall (375 vs 150) but Alice leads on WISDOM.
	require.Len(t, all, 2)
	assert.Equal(t, "Bob Brown", all[0].DisplayName)
	assert.True(t, all[0].TotalPoints.Equal(decimal.NewFromInt(375)))

	require.Len(t, wisdom, 2)
	assert.Equal(t, "Alice Adams", wisdom[0].DisplayName)
	assert.True(t, wisdom[0].TotalPoints.Equal(decimal.NewFromInt(150)))
}

func TestTeamLeaderboard_SumsMemberPoints(t *testing.T) {
	// Arrange
	users := memstore.NewUserRepository()
	donations := memstore.NewDonationRepository()
	teams := memstore.NewTeamRepository()
	require.NoError(t, teams.Save(team.ReconstructTeam("teamAAAA", "Alphas", "alice001")))
	require.NoError(t, teams.Save(team.ReconstructTeam("teamBBBB", "Betas", "bob00001")))
	require.NoError(t, users.Save(user.ReconstructUser("alice001", "a@example.com", "hash", "Alice", "Adams", "teamAAAA")))
	require.NoError(t, users.Save(user.ReconstructUser("bob00001", "b@example.com", "hash", "Bob", "Brown", "teamBBBB")))
	require.NoError(t, users.Save(user.ReconstructUser("carol001", "c@example.com", "hash", "Carol", "Clark", "teamBBBB")))

	give := func(userID string, amount int64) {
		d, err := donation.NewMonetaryDonation(userID, decimal.NewFromInt(amount), donation.PathService, "2025-06-01T00:00:00Z")
		require.NoError(t, err)
		require.NoError(t, donations.Append(d))
	}
	give("alice001", 100)
	give("bob00001", 40)
	give("carol001", 80)
	uc := NewTeamLeaderboardUseCase(teams, users, donations)

	// Act
	entries, err := uc.Execute()

	// Assert: Betas 180 points over Alphas 150 points.
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Betas", entries[0].Name)
	assert.True(t, entries[0].TotalPoints.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, 2, entries[0].MemberCount)
	assert.Equal(t, "Bob Brown", entries[0].LeaderName)
	assert.Equal(t, "Alphas", entries[1].Name)
}
