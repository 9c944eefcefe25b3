package referral

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodeReferralNotFound  shared.ErrorCode = "REFERRAL_NOT_FOUND"
	ErrCodeMissingReferredID shared.ErrorCode = "MISSING_REFERRED_ID"
	ErrCodeMissingCode       shared.ErrorCode = "MISSING_REFERRAL_CODE"
)

var (
	ErrReferralNotFound = &shared.DomainError{
		Code:    ErrCodeReferralNotFound,
		Message: "referral not found",
	}

	ErrMissingReferredID = &shared.DomainError{
		Code:    ErrCodeMissingReferredID,
		Message: "referral requires a referred user id",
	}

	ErrMissingCode = &shared.DomainError{
		Code:    ErrCodeMissingCode,
		Message: "referral requires a code",
	}
)
