package referral

import "strings"

// ===========================
// Referral record
// ===========================

// CodePrefix is the fixed prefix of a shareable referral code; everything
// after it is the referrer's user id.
const CodePrefix = "REF-"

// Referral links a referred user to the code they signed up with. One row
// exists per (referred user, code), written on the first qualifying donation.
//
// ReferrerID may be empty when the code did not resolve to a known user; the
// row is still kept so the donation flag is recorded.
type Referral struct {
	referrerID string
	referredID string
	code       string
	hasDonated bool
}

// NewReferral creates a referral row. referrerID may be empty (unresolved).
func NewReferral(referrerID, referredID, code string, hasDonated bool) (*Referral, error) {
	if referredID == "" {
		return nil, ErrMissingReferredID
	}
	if code == "" {
		return nil, ErrMissingCode
	}
	return &Referral{
		referrerID: referrerID,
		referredID: referredID,
		code:       code,
		hasDonated: hasDonated,
	}, nil
}

// ReconstructReferral rebuilds a row loaded from storage.
func ReconstructReferral(referrerID, referredID, code string, hasDonated bool) *Referral {
	return &Referral{referrerID: referrerID, referredID: referredID, code: code, hasDonated: hasDonated}
}

func (r *Referral) ReferrerID() string { return r.referrerID }
func (r *Referral) ReferredID() string { return r.referredID }
func (r *Referral) Code() string       { return r.code }
func (r *Referral) HasDonated() bool   { return r.hasDonated }

// MarkDonated flags the referral as having produced a qualifying donation and
// fills in the referrer when it was resolved later.
func (r *Referral) MarkDonated(referrerID string) {
	r.hasDonated = true
	if referrerID != "" {
		r.referrerID = referrerID
	}
}

// CandidateReferrerID extracts the user id embedded in a referral code.
// Returns "" when the code does not carry the fixed prefix. The remainder is
// taken verbatim; whether it names a real user is the caller's lookup.
func CandidateReferrerID(code string) string {
	if !strings.HasPrefix(code, CodePrefix) {
		return ""
	}
	return code[len(CodePrefix):]
}
