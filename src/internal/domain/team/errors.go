package team

import "github.com/hopeworks/impact_hub/src/internal/domain/shared"

const (
	ErrCodeTeamNotFound    shared.ErrorCode = "TEAM_NOT_FOUND"
	ErrCodeInvalidTeamName shared.ErrorCode = "INVALID_TEAM_NAME"
	ErrCodeInvalidLeaderID shared.ErrorCode = "INVALID_LEADER_ID"
)

var (
	// ErrTeamNotFound no team row matches the requested identifier.
	ErrTeamNotFound = &shared.DomainError{
		Code:    ErrCodeTeamNotFound,
		Message: "team not found",
	}

	ErrInvalidTeamName = &shared.DomainError{
		Code:    ErrCodeInvalidTeamName,
		Message: "team name must not be empty",
	}

	ErrInvalidLeaderID = &shared.DomainError{
		Code:    ErrCodeInvalidLeaderID,
		Message: "leader id must not be empty",
	}
)
