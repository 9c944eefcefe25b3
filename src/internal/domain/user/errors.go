package user

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodeUserNotFound           shared.ErrorCode = "USER_NOT_FOUND"
	ErrCodeEmailAlreadyRegistered shared.ErrorCode = "EMAIL_ALREADY_REGISTERED"
	ErrCodeInvalidEmail           shared.ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPasswordHash    shared.ErrorCode = "INVALID_PASSWORD_HASH"
	ErrCodeInvalidTeamID          shared.ErrorCode = "INVALID_TEAM_ID"
)

var (
	// ErrUserNotFound no user row matches the requested identifier or email.
	ErrUserNotFound = &shared.DomainError{
		Code:    ErrCodeUserNotFound,
		Message: "user not found",
	}

	// ErrEmailAlreadyRegistered the email is taken (case-sensitive exact match).
	ErrEmailAlreadyRegistered = &shared.DomainError{
		Code:    ErrCodeEmailAlreadyRegistered,
		Message: "Email already exists",
	}

	ErrInvalidEmail = &shared.DomainError{
		Code:    ErrCodeInvalidEmail,
		Message: "email must not be empty",
	}

	ErrInvalidPasswordHash = &shared.DomainError{
		Code:    ErrCodeInvalidPasswordHash,
		Message: "password hash must not be empty",
	}

	ErrInvalidTeamID = &shared.DomainError{
		Code:    ErrCodeInvalidTeamID,
		Message: "team id must not be empty",
	}
)
