package user

import (
	"strings"
)

// ===========================
// User entity
// ===========================

// UserIDLength is the generated identifier length for user records.
const UserIDLength = 8

// User is a registered supporter.
//
// Invariants:
// - ID, Email and PasswordHash are set at creation and never change
// - TeamID == "" means the user is unaffiliated
// - the record is never hard-deleted; leaving a team only clears TeamID
type User struct {
	id           string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	teamID       string
}

// NewUser creates a user with a freshly generated identifier.
// The password must already be hashed; this package never sees plaintext.
func NewUser(id, email, passwordHash, firstName, lastName string) (*User, error) {
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrInvalidPasswordHash
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
	}, nil
}

// ReconstructUser rebuilds a user loaded from storage. No validation beyond
// the identifier: stored rows are trusted.
func ReconstructUser(id, email, passwordHash, firstName, lastName, teamID string) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		teamID:       teamID,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) TeamID() string       { return u.teamID }

// HasTeam reports whether the user belongs to a team.
func (u *User) HasTeam() bool {
	return u.teamID != ""
}

// DisplayName is "first last", falling back to the email address when either
// name part is missing.
func (u *User) DisplayName() string {
	first := strings.TrimSpace(u.firstName)
	last := strings.TrimSpace(u.lastName)
	if first == "" || last == "" {
		return u.email
	}
	return first + " " + last
}

// JoinTeam sets the denormalized team foreign key.
func (u *User) JoinTeam(teamID string) error {
	if teamID == "" {
		return ErrInvalidTeamID
	}
	u.teamID = teamID
	return nil
}

// LeaveTeam clears the team foreign key. Leaving while unaffiliated is a no-op.
func (u *User) LeaveTeam() {
	u.teamID = ""
}
