package donation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonetaryDonation_ImpactIsAmountTimesOnePointFive(t *testing.T) {
	d, err := NewMonetaryDonation("u1", decimal.NewFromInt(40), PathWisdom, "2025-01-01T00:00:00Z")

	require.NoError(t, err)
	assert.True(t, d.ImpactPoints().Equal(decimal.NewFromInt(60)))
	assert.True(t, d.Hours().IsZero())
	assert.False(t, d.IsVolunteer())
}

func TestNewMonetaryDonation_FractionalAmount(t *testing.T) {
	d, err := NewMonetaryDonation("u1", decimal.NewFromFloat(33.33), PathCourage, "2025-01-01T00:00:00Z")

	require.NoError(t, err)
	assert.True(t, d.ImpactPoints().Equal(decimal.NewFromFloat(49.995)))
}

func TestNewVolunteerEntry_ImpactIsHoursTimesTen(t *testing.T) {
	d, err := NewVolunteerEntry("u1", decimal.NewFromFloat(2.5), "2025-01-01")

	require.NoError(t, err)
	assert.Equal(t, PathService, d.Path())
	assert.True(t, d.Amount().IsZero())
	assert.True(t, d.ImpactPoints().Equal(decimal.NewFromInt(25)))
	assert.True(t, d.IsVolunteer())
}

func TestNewReferralBonus_AlwaysTenPoints(t *testing.T) {
	d, err := NewReferralBonus("referrer", "2025-01-01T00:00:00Z")

	require.NoError(t, err)
	assert.Equal(t, PathReferralBonus, d.Path())
	assert.True(t, d.ImpactPoints().Equal(decimal.NewFromInt(10)))
	assert.True(t, d.Amount().IsZero())
}

func TestNewMonetaryDonation_Validation(t *testing.T) {
	_, err := NewMonetaryDonation("", decimal.NewFromInt(10), PathWisdom, "")
	assert.ErrorIs(t, err, ErrMissingUserID)

	_, err = NewMonetaryDonation("u1", decimal.NewFromInt(-1), PathWisdom, "")
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = NewMonetaryDonation("u1", decimal.NewFromInt(10), Path("KINDNESS"), "")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestParsePath(t *testing.T) {
	for _, p := range GivingPaths {
		parsed, err := ParsePath(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	// The synthetic bonus path is not a giving path
	_, err := ParsePath("Referral Bonus")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestFilterByPath(t *testing.T) {
	a, _ := NewMonetaryDonation("u1", decimal.NewFromInt(1), PathWisdom, "")
	b, _ := NewMonetaryDonation("u1", decimal.NewFromInt(1), PathCourage, "")

	all := []*Donation{a, b}
	assert.Len(t, FilterByPath(all, ""), 2)
	assert.Equal(t, []*Donation{a}, FilterByPath(all, "WISDOM"))
	assert.Empty(t, FilterByPath(all, "JUSTICE"))
}

func TestTotalPointsAndHours(t *testing.T) {
	a, _ := NewMonetaryDonation("u1", decimal.NewFromInt(100), PathWisdom, "")
	b, _ := NewVolunteerEntry("u1", decimal.NewFromInt(3), "2025-01-01")

	rows := []*Donation{a, b}
	assert.True(t, TotalPoints(rows).Equal(decimal.NewFromInt(180)))
	assert.True(t, TotalHours(rows).Equal(decimal.NewFromInt(3)))
}
