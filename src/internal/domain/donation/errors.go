package donation

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodeInvalidPath    shared.ErrorCode = "INVALID_PATH"
	ErrCodeMissingUserID  shared.ErrorCode = "MISSING_USER_ID"
	ErrCodeNegativeAmount shared.ErrorCode = "NEGATIVE_AMOUNT"
	ErrCodeNegativeHours  shared.ErrorCode = "NEGATIVE_HOURS"
)

var (
	// ErrInvalidPath the path is not one of the giving paths.
	ErrInvalidPath = &shared.DomainError{
		Code:    ErrCodeInvalidPath,
		Message: "unknown donation path",
	}

	ErrMissingUserID = &shared.DomainError{
		Code:    ErrCodeMissingUserID,
		Message: "donation requires a user id",
	}

	ErrNegativeAmount = &shared.DomainError{
		Code:    ErrCodeNegativeAmount,
		Message: "donation amount must not be negative",
	}

	ErrNegativeHours = &shared.DomainError{
		Code:    ErrCodeNegativeHours,
		Message: "volunteer hours must not be negative",
	}
)
