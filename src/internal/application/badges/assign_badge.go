package badges

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Assign badge use case
// ===========================

type AssignBadgeCommand struct {
	UserID  string
	BadgeID string
}

type AssignBadgeResult struct {
	// AlreadyAssigned is true when the user held the badge before the call.
	// Assignment is idempotent; no duplicate row is written.
	AlreadyAssigned bool
}

// AssignBadgeUseCase grants a badge directly, without running eligibility.
// Used by the client after it detects a qualifying action.
type AssignBadgeUseCase interface {
	Execute(cmd AssignBadgeCommand) (*AssignBadgeResult, error)
}

type assignBadgeUseCase struct {
	assignments badge.AssignmentRepository
	users       user.UserRepository
}

func NewAssignBadgeUseCase(assignments badge.AssignmentRepository, users user.UserRepository) AssignBadgeUseCase {
	return &assignBadgeUseCase{assignments: assignments, users: users}
}

func (uc *assignBadgeUseCase) Execute(cmd AssignBadgeCommand) (*AssignBadgeResult, error) {
	if _, err := uc.users.FindByID(cmd.UserID); err != nil {
		return nil, err
	}

	a, err := badge.NewAssignment(cmd.UserID, badge.ID(cmd.BadgeID))
	if err != nil {
		return nil, err
	}

	exists, err := uc.assignments.Exists(cmd.UserID, a.BadgeID())
	if err != nil {
		return nil, err
	}
	if exists {
		return &AssignBadgeResult{AlreadyAssigned: true}, nil
	}

	if err := uc.assignments.Append(a); err != nil {
		return nil, err
	}
	return &AssignBadgeResult{AlreadyAssigned: false}, nil
}
