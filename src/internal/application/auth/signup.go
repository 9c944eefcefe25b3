package auth

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// Signup use case
// ===========================

// SignupCommand carries the raw signup form fields.
type SignupCommand struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// SignupResult is the created account, ready for a session cookie.
type SignupResult struct {
	User *user.User
}

// SignupUseCase registers a new supporter.
//
// Rules:
// 1. password and confirmation must match
// 2. email must not be registered already (case-sensitive exact match)
// 3. password is stored hashed; a fresh short id becomes the primary key
//
// No uniqueness check is run against existing ids; collision probability is
// governed by the generator's nonce entropy.
type SignupUseCase interface {
	Execute(cmd SignupCommand) (*SignupResult, error)
}

type signupUseCase struct {
	users  user.UserRepository
	hasher PasswordHasher
	newID  IDGenerator
}

func NewSignupUseCase(users user.UserRepository, hasher PasswordHasher, newID IDGenerator) SignupUseCase {
	return &signupUseCase{users: users, hasher: hasher, newID: newID}
}

func (uc *signupUseCase) Execute(cmd SignupCommand) (*SignupResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, ErrMissingField.WithContext("fields", "email, password")
	}
	if cmd.Password != cmd.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	exists, err := uc.users.ExistsByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailAlreadyRegistered.WithContext("email", cmd.Email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(uc.newID(user.UserIDLength), cmd.Email, hash, cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, err
	}
	if err := uc.users.Save(u); err != nil {
		return nil, err
	}

	return &SignupResult{User: u}, nil
}
