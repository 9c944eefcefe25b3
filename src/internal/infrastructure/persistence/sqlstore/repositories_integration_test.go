package sqlstore

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/team"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

func TestGORMUserRepository_SaveAndLookups(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	u := user.ReconstructUser("user0001", "ada@example.com", "hash", "Ada", "Lovelace", "")

	// Act
	require.NoError(t, repo.Save(u))

	// Assert
	byID, err := repo.FindByID("user0001")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", byID.DisplayName())

	byEmail, err := repo.FindByEmail("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user0001", byEmail.ID())

	exists, err := repo.ExistsByEmail("ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID("nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGORMUserRepository_SaveIsUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	u := user.ReconstructUser("user0001", "ada@example.com", "hash", "Ada", "Lovelace", "")
	require.NoError(t, repo.Save(u))

	require.NoError(t, u.JoinTeam("teamAAAA"))
	require.NoError(t, repo.Save(u))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "teamAAAA", all[0].TeamID())
}

func TestGORMDonationRepository_AppendOrderAndCount(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewDonationRepository(db)
	first, err := donation.NewMonetaryDonation("donor001", decimal.NewFromFloat(33.5), donation.PathWisdom, "2025-06-01T00:00:00Z")
	require.NoError(t, err)
	second, err := donation.NewVolunteerEntry("donor001", decimal.NewFromFloat(2.5), "2025-06-02")
	require.NoError(t, err)
	require.NoError(t, repo.Append(first))
	require.NoError(t, repo.Append(second))

	// Act
	rows, err := repo.FindByUser("donor001")

	// Assert: insertion order, exact decimal round-trip.
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].ImpactPoints().Equal(decimal.NewFromFloat(50.25)))
	assert.True(t, rows[1].Hours().Equal(decimal.NewFromFloat(2.5)))

	count, err := repo.CountByUser("donor001")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGORMTeamRepository_LeaderLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	require.NoError(t, repo.Save(team.ReconstructTeam("teamAAAA", "The Givers", "leader01")))

	byLeader, err := repo.FindByLeader("leader01")
	require.NoError(t, err)
	assert.Equal(t, "teamAAAA", byLeader.ID())

	_, err = repo.FindByLeader("nobody")
	assert.ErrorIs(t, err, team.ErrTeamNotFound)
}

func TestGORMReferralRepository_UpsertByReferredAndCode(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewReferralRepository(db)
	row, err := referral.NewReferral("", "friend01", "REF-ref00001", false)
	require.NoError(t, err)
	require.NoError(t, repo.Save(row))

	// Act: second save with the same key updates, not duplicates.
	row.MarkDonated("ref00001")
	require.NoError(t, repo.Save(row))

	// Assert
	reloaded, err := repo.FindByReferredAndCode("friend01", "REF-ref00001")
	require.NoError(t, err)
	assert.True(t, reloaded.HasDonated())
	assert.Equal(t, "ref00001", reloaded.ReferrerID())

	byReferrer, err := repo.FindByReferrer("ref00001")
	require.NoError(t, err)
	assert.Len(t, byReferrer, 1)
}

func TestGORMBadgeRepository_AppendAndExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgeRepository(db)
	a, err := badge.NewAssignment("user0001", badge.FirstDonation)
	require.NoError(t, err)
	require.NoError(t, repo.Append(a))

	exists, err := repo.Exists("user0001", badge.FirstDonation)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("user0001", badge.HundredClub)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGORMWallRepository_ApprovalFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWallRepository(db)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pending, err := wall.NewMessage("msg00001", "Jo", "Stay strong, always.", "en", createdAt)
	require.NoError(t, err)
	require.NoError(t, repo.Append(pending))
	require.NoError(t, repo.Append(wall.ReconstructMessage("msg00002", "Sam", "We are with you.", "es", createdAt, true)))

	visible, err := repo.FindApproved()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "msg00002", visible[0].ID())

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
