package referral

// ===========================
// ReferralRepository interface
// ===========================

// ReferralRepository is the storage port for referral rows.
type ReferralRepository interface {
	// Save upserts by (referred user, code).
	Save(r *Referral) error

	// FindByReferredAndCode returns ErrReferralNotFound when no row matches.
	FindByReferredAndCode(referredID, code string) (*Referral, error)

	// FindByReferrer returns every row where the user is the referrer.
	FindByReferrer(referrerID string) ([]*Referral, error)
}
