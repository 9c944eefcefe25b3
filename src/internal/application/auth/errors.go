package auth

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodePasswordMismatch   shared.ErrorCode = "PASSWORD_MISMATCH"
	ErrCodeInvalidPassword    shared.ErrorCode = "INVALID_PASSWORD"
	ErrCodeInvalidCredentials shared.ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeMissingField       shared.ErrorCode = "MISSING_FIELD"
)

var (
	// ErrPasswordMismatch the signup confirmation does not match the password.
	ErrPasswordMismatch = &shared.DomainError{
		Code:    ErrCodePasswordMismatch,
		Message: "Passwords do not match",
	}

	// ErrInvalidPassword the email exists but the password is wrong.
	ErrInvalidPassword = &shared.DomainError{
		Code:    ErrCodeInvalidPassword,
		Message: "Invalid password",
	}

	// ErrInvalidCredentials no account matches the email.
	ErrInvalidCredentials = &shared.DomainError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid email or password",
	}

	ErrMissingField = &shared.DomainError{
		Code:    ErrCodeMissingField,
		Message: "required field missing",
	}
)
