package wall

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodeEmptyMessage   shared.ErrorCode = "EMPTY_MESSAGE"
	ErrCodeMessageTooLong shared.ErrorCode = "MESSAGE_TOO_LONG"
)

var (
	ErrEmptyMessage = &shared.DomainError{
		Code:    ErrCodeEmptyMessage,
		Message: "message text must not be empty",
	}

	// ErrMessageTooLong the text exceeds MaxMessageLength characters.
	ErrMessageTooLong = &shared.DomainError{
		Code:    ErrCodeMessageTooLong,
		Message: "message text exceeds 250 characters",
	}
)
