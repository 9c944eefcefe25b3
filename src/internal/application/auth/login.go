package auth

import (
	"errors"

	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Login use case
// ===========================

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User *user.User
}

// LoginUseCase verifies credentials against the stored hash. An unknown
// email yields ErrInvalidCredentials; a known email with a wrong password
// yields ErrInvalidPassword. The client shows different copy for the two.
type LoginUseCase interface {
	Execute(cmd LoginCommand) (*LoginResult, error)
}

type loginUseCase struct {
	users  user.UserRepository
	hasher PasswordHasher
}

func NewLoginUseCase(users user.UserRepository, hasher PasswordHasher) LoginUseCase {
	return &loginUseCase{users: users, hasher: hasher}
}

func (uc *loginUseCase) Execute(cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.users.FindByEmail(cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Verify(cmd.Password, u.PasswordHash()) {
		return nil, ErrInvalidPassword
	}

	return &LoginResult{User: u}, nil
}
