package giving

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
	"github.com/hopeworks/impact_hub/src/internal/infrastructure/persistence/memstore"
)

func TestRecordVolunteer_AppendsServiceRow(t *testing.T) {
	// Arrange
	users := memstore.NewUserRepository()
	donations := memstore.NewDonationRepository()
	seedUser(t, users, "helper01", "helper@example.com")
	uc := NewRecordVolunteerUseCase(donations, users, fixedClock)

	// Act
	result, err := uc.Execute(RecordVolunteerCommand{
		UserID: "helper01",
		Hours:  decimal.NewFromInt(3),
		Date:   "2025-05-20",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, donation.PathService, result.Donation.Path())
	assert.True(t, result.Donation.Amount().IsZero())
	assert.True(t, result.Donation.ImpactPoints().Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "2025-05-20", result.Donation.CreatedAt())
}

func TestRecordVolunteer_EmptyDateDefaultsToNow(t *testing.T) {
	users := memstore.NewUserRepository()
	donations := memstore.NewDonationRepository()
	seedUser(t, users, "helper01", "helper@example.com")
	uc := NewRecordVolunteerUseCase(donations, users, fixedClock)

	result, err := uc.Execute(RecordVolunteerCommand{
		UserID: "helper01",
		Hours:  decimal.NewFromFloat(1.5),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T12:00:00Z", result.Donation.CreatedAt())
	assert.True(t, result.Donation.ImpactPoints().Equal(decimal.NewFromInt(15)))
}

func TestRecordVolunteer_RejectsNegativeHours(t *testing.T) {
	users := memstore.NewUserRepository()
	seedUser(t, users, "helper01", "helper@example.com")
	uc := NewRecordVolunteerUseCase(memstore.NewDonationRepository(), users, fixedClock)

	_, err := uc.Execute(RecordVolunteerCommand{
		UserID: "helper01",
		Hours:  decimal.NewFromInt(-1),
	})

	assert.ErrorIs(t, err, donation.ErrNegativeHours)
}

func TestListUserDonations_SumsPointsAndHours(t *testing.T) {
	users := memstore.NewUserRepository()
	donations := memstore.NewDonationRepository()
	referrals := memstore.NewReferralRepository()
	seedUser(t, users, "mixed01", "mixed@example.com")
	donate := NewRecordDonationUseCase(donations, referrals, users, fixedClock)
	volunteer := NewRecordVolunteerUseCase(donations, users, fixedClock)

	_, err := donate.Execute(RecordDonationCommand{UserID: "mixed01", Amount: decimal.NewFromInt(100), Path: "WISDOM"})
	require.NoError(t, err)
	_, err = volunteer.Execute(RecordVolunteerCommand{UserID: "mixed01", Hours: decimal.NewFromInt(2)})
	require.NoError(t, err)

	result, err := NewListUserDonationsUseCase(donations).Execute("mixed01")

	require.NoError(t, err)
	assert.Len(t, result.Donations, 2)
	assert.True(t, result.TotalPoints.Equal(decimal.NewFromInt(170)))
	assert.True(t, result.TotalHours.Equal(decimal.NewFromInt(2)))
}

func TestListDonations_FiltersByPath(t *testing.T) {
	users := memstore.NewUserRepository()
	donations := memstore.NewDonationRepository()
	referrals := memstore.NewReferralRepository()
	seedUser(t, users, "donor001", "donor@example.com")
	donate := NewRecordDonationUseCase(donations, referrals, users, fixedClock)

	for _, path := range []string{"WISDOM", "COURAGE", "WISDOM"} {
		_, err := donate.Execute(RecordDonationCommand{UserID: "donor001", Amount: decimal.NewFromInt(10), Path: path})
		require.NoError(t, err)
	}

	all, err := NewListDonationsUseCase(donations).Execute("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	wisdom, err := NewListDonationsUseCase(donations).Execute("WISDOM")
	require.NoError(t, err)
	assert.Len(t, wisdom, 2)
}
