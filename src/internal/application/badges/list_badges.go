package badges

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/badge"
)

// ===========================
// List badges use case
// ===========================

// ListBadgesUseCase returns the ids of every badge the user holds.
type ListBadgesUseCase interface {
	Execute(userID string) ([]badge.ID, error)
}

type listBadgesUseCase struct {
	assignments badge.AssignmentRepository
}

func NewListBadgesUseCase(assignments badge.AssignmentRepository) ListBadgesUseCase {
	return &listBadgesUseCase{assignments: assignments}
}

func (uc *listBadgesUseCase) Execute(userID string) ([]badge.ID, error) {
	assignments, err := uc.assignments.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]badge.ID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.BadgeID())
	}
	return ids, nil
}
