package user

// ===========================
// UserRepository interface
// ===========================

// UserRepository is the storage port for user records.
//
// Backends load the whole table per call and rewrite it wholesale on Save;
// there is no locking or transaction support (accepted lost-update gap of the
// flat-file store, see DESIGN.md).
type UserRepository interface {
	// Save inserts or updates by user id.
	Save(u *User) error

	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(id string) (*User, error)

	// FindByEmail matches the email exactly (case-sensitive).
	// Returns ErrUserNotFound when no row matches.
	FindByEmail(email string) (*User, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(email string) (bool, error)

	// FindAll returns every user row. Team membership is denormalized onto
	// users, so member lists and team aggregates scan this.
	FindAll() ([]*User, error)
}
