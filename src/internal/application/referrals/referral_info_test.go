package referrals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
	"github.com/hopeworks/impact_hub/src/internal/infrastructure/persistence/memstore"
)

func TestReferralInfo_DerivesCodeFromUserID(t *testing.T) {
	users := memstore.NewUserRepository()
	require.NoError(t, users.Save(user.ReconstructUser("ref00001", "r@example.com", "hash", "Ref", "Errer", "")))
	uc := NewReferralInfoUseCase(memstore.NewReferralRepository(), users)

	result, err := uc.Execute("ref00001")

	require.NoError(t, err)
	assert.Equal(t, "REF-ref00001", result.Code)
	assert.Empty(t, result.Referred)
	assert.Zero(t, result.DonatedCount)
}

func TestReferralInfo_ResolvesReferredNamesAndCountsDonations(t *testing.T) {
	// Arrange
	users := memstore.NewUserRepository()
	referrals := memstore.NewReferralRepository()
	require.NoError(t, users.Save(user.ReconstructUser("ref00001", "r@example.com", "hash", "Ref", "Errer", "")))
	require.NoError(t, users.Save(user.ReconstructUser("friend01", "f@example.com", "hash", "First", "Friend", "")))
	require.NoError(t, referrals.Save(referral.ReconstructReferral("ref00001", "friend01", "REF-ref00001", true)))
	require.NoError(t, referrals.Save(referral.ReconstructReferral("ref00001", "gone0001", "REF-ref00001", false)))
	uc := NewReferralInfoUseCase(referrals, users)

	// Act
	result, err := uc.Execute("ref00001")

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Referred, 2)
	assert.Equal(t, "First Friend", result.Referred[0].DisplayName)
	assert.True(t, result.Referred[0].HasDonated)
	// A referred account that no longer resolves keeps the raw id.
	assert.Equal(t, "gone0001", result.Referred[1].DisplayName)
	assert.Equal(t, 1, result.DonatedCount)
}

func TestReferralInfo_UnknownUserFails(t *testing.T) {
	uc := NewReferralInfoUseCase(memstore.NewReferralRepository(), memstore.NewUserRepository())

	_, err := uc.Execute("ghost")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
