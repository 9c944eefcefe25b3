package badge

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodeUnknownBadge  shared.ErrorCode = "UNKNOWN_BADGE"
	ErrCodeMissingUserID shared.ErrorCode = "MISSING_USER_ID"
)

var (
	// ErrUnknownBadge the identifier is not one of the 11 defined badges.
	ErrUnknownBadge = &shared.DomainError{
		Code:    ErrCodeUnknownBadge,
		Message: "unknown badge id",
	}

	ErrMissingUserID = &shared.DomainError{
		Code:    ErrCodeMissingUserID,
		Message: "badge assignment requires a user id",
	}
)
