package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateReferrerID(t *testing.T) {
	assert.Equal(t, "abc123XY", CandidateReferrerID("REF-abc123XY"))
	// Remainder is taken verbatim, no trimming
	assert.Equal(t, " abc ", CandidateReferrerID("REF- abc "))
	assert.Equal(t, "", CandidateReferrerID("abc123XY"))
	assert.Equal(t, "", CandidateReferrerID("ref-abc123XY"))
	assert.Equal(t, "", CandidateReferrerID(""))
}

func TestNewReferral_Validation(t *testing.T) {
	_, err := NewReferral("r1", "", "REF-r1", true)
	assert.ErrorIs(t, err, ErrMissingReferredID)

	_, err = NewReferral("r1", "u1", "", true)
	assert.ErrorIs(t, err, ErrMissingCode)

	// Unresolved referrer is allowed
	r, err := NewReferral("", "u1", "REF-ghost", true)
	require.NoError(t, err)
	assert.Equal(t, "", r.ReferrerID())
	assert.True(t, r.HasDonated())
}

func TestMarkDonated_FillsReferrerWhenResolved(t *testing.T) {
	r := ReconstructReferral("", "u1", "REF-r1", false)

	r.MarkDonated("")
	assert.True(t, r.HasDonated())
	assert.Equal(t, "", r.ReferrerID())

	r.MarkDonated("r1")
	assert.Equal(t, "r1", r.ReferrerID())
}
