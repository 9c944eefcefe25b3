package donation

import (
	"github.com/shopspring/decimal"
)

// ===========================
// Path enum
// ===========================

// Path is a thematic giving category.
type Path string

const (
	PathProtection Path = "PROTECTION"
	PathCourage    Path = "COURAGE"
	PathWisdom     Path = "WISDOM"
	PathService    Path = "SERVICE"
	PathJustice    Path = "JUSTICE"

	// PathReferralBonus marks the synthetic row appended to a referrer's
	// history when a referred user makes their first donation.
	PathReferralBonus Path = "Referral Bonus"
)

// GivingPaths are the paths a supporter can donate to directly.
var GivingPaths = []Path{PathProtection, PathCourage, PathWisdom, PathService, PathJustice}

// ParsePath validates a client-supplied path name.
func ParsePath(s string) (Path, error) {
	for _, p := range GivingPaths {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrInvalidPath.WithContext("path", s)
}

// ===========================
// Donation record
// ===========================

// Donation is one row of the donation table: a monetary gift, a volunteer
// entry, or a synthetic referral bonus.
//
// Invariants:
// - impact points are computed at creation and never recomputed
// - volunteer rows have Amount 0; monetary rows have Hours 0
// - referral bonus rows have Amount 0, Hours 0 and exactly 10 points
type Donation struct {
	userID       string
	amount       decimal.Decimal
	path         Path
	impactPoints decimal.Decimal
	hours        decimal.Decimal
	createdAt    string
}

// NewMonetaryDonation records a gift of amount currency units on a giving
// path. Impact points are fixed here as amount x 1.5.
func NewMonetaryDonation(userID string, amount decimal.Decimal, path Path, createdAt string) (*Donation, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount.WithContext("amount", amount.String())
	}
	if _, err := ParsePath(string(path)); err != nil {
		return nil, err
	}
	return &Donation{
		userID:       userID,
		amount:       amount,
		path:         path,
		impactPoints: MonetaryImpact(amount),
		hours:        decimal.Zero,
		createdAt:    createdAt,
	}, nil
}

// NewVolunteerEntry records volunteer time as a zero-amount SERVICE row.
// Impact points are fixed here as hours x 10.
func NewVolunteerEntry(userID string, hours decimal.Decimal, date string) (*Donation, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if hours.IsNegative() {
		return nil, ErrNegativeHours.WithContext("hours", hours.String())
	}
	return &Donation{
		userID:       userID,
		amount:       decimal.Zero,
		path:         PathService,
		impactPoints: VolunteerImpact(hours),
		hours:        hours,
		createdAt:    date,
	}, nil
}

// NewReferralBonus records the flat 10-point award appended to a referrer's
// history.
func NewReferralBonus(referrerID string, createdAt string) (*Donation, error) {
	if referrerID == "" {
		return nil, ErrMissingUserID
	}
	return &Donation{
		userID:       referrerID,
		amount:       decimal.Zero,
		path:         PathReferralBonus,
		impactPoints: ReferralBonusPoints(),
		hours:        decimal.Zero,
		createdAt:    createdAt,
	}, nil
}

// ReconstructDonation rebuilds a row loaded from storage, trusting the stored
// impact points (they are never recomputed).
func ReconstructDonation(userID string, amount decimal.Decimal, path Path, impactPoints, hours decimal.Decimal, createdAt string) *Donation {
	return &Donation{
		userID:       userID,
		amount:       amount,
		path:         path,
		impactPoints: impactPoints,
		hours:        hours,
		createdAt:    createdAt,
	}
}

func (d *Donation) UserID() string                { return d.userID }
func (d *Donation) Amount() decimal.Decimal       { return d.amount }
func (d *Donation) Path() Path                    { return d.path }
func (d *Donation) ImpactPoints() decimal.Decimal { return d.impactPoints }
func (d *Donation) Hours() decimal.Decimal        { return d.hours }
func (d *Donation) CreatedAt() string             { return d.createdAt }

// IsVolunteer reports whether this row records volunteer time.
func (d *Donation) IsVolunteer() bool {
	return d.hours.IsPositive()
}

// FilterByPath returns the subset of rows on the given path. An empty path
// returns the input unchanged.
func FilterByPath(rows []*Donation, path string) []*Donation {
	if path == "" {
		return rows
	}
	filtered := make([]*Donation, 0, len(rows))
	for _, d := range rows {
		if string(d.path) == path {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
