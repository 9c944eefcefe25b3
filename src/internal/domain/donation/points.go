package donation

import "github.com/shopspring/decimal"

// ===========================
// Impact point formulas
// ===========================
//
// Impact points are a derived score fixed at write time:
// - monetary donation: amount x 1.5
// - volunteer entry:   hours x 10
// - referral bonus:    flat 10

var (
	monetaryRate  = decimal.NewFromFloat(1.5)
	volunteerRate = decimal.NewFromInt(10)
	referralBonus = decimal.NewFromInt(10)
)

// MonetaryImpact converts a donation amount to impact points.
func MonetaryImpact(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(monetaryRate)
}

// VolunteerImpact converts volunteer hours to impact points.
func VolunteerImpact(hours decimal.Decimal) decimal.Decimal {
	return hours.Mul(volunteerRate)
}

// ReferralBonusPoints is the fixed award for a qualifying referral.
func ReferralBonusPoints() decimal.Decimal {
	return referralBonus
}

// TotalPoints sums impact points across rows.
func TotalPoints(rows []*Donation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range rows {
		total = total.Add(d.ImpactPoints())
	}
	return total
}

// TotalHours sums volunteer hours across rows.
func TotalHours(rows []*Donation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range rows {
		total = total.Add(d.Hours())
	}
	return total
}
