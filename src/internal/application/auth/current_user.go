package auth

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Current user use case
// ===========================

// CurrentUserUseCase resolves a session cookie value back to the user row.
// The cookie value IS the user id; an id that matches no row means no
// session (user.ErrUserNotFound).
type CurrentUserUseCase interface {
	Execute(sessionValue string) (*user.User, error)
}

type currentUserUseCase struct {
	users user.UserRepository
}

func NewCurrentUserUseCase(users user.UserRepository) CurrentUserUseCase {
	return &currentUserUseCase{users: users}
}

func (uc *currentUserUseCase) Execute(sessionValue string) (*user.User, error) {
	if sessionValue == "" {
		return nil, user.ErrUserNotFound
	}
	return uc.users.FindByID(sessionValue)
}
