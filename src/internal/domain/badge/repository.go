package badge

// ===========================
// AssignmentRepository interface
// ===========================

// AssignmentRepository is the storage port for user-badge assignments.
// Uniqueness is enforced by an existence check before insert, and rows are
// never deleted.
type AssignmentRepository interface {
	// Append adds an assignment row. Callers check Exists first.
	Append(a *Assignment) error

	// Exists reports whether the user already holds the badge.
	Exists(userID string, badgeID ID) (bool, error)

	// FindByUser returns every badge assignment for the user.
	FindByUser(userID string) ([]*Assignment, error)
}
