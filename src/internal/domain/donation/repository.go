package donation

// ===========================
// DonationRepository interface
// ===========================

// DonationRepository is the storage port for the donation table. Rows are
// append-only: impact points never change once written.
type DonationRepository interface {
	// Append adds one row to the table.
	Append(d *Donation) error

	// FindByUser returns every row owned by the user, in insertion order.
	FindByUser(userID string) ([]*Donation, error)

	// FindAll returns the whole table in insertion order.
	FindAll() ([]*Donation, error)

	// CountByUser counts the user's rows. Used for the first-donation check
	// before granting a referral bonus.
	CountByUser(userID string) (int, error)
}
