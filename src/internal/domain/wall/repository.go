package wall

// ===========================
// MessageRepository interface
// ===========================

// MessageRepository is the storage port for persisted wall messages. The six
// default messages are not stored; listings prepend them in memory.
type MessageRepository interface {
	// Append adds a message row.
	Append(m *Message) error

	// FindApproved returns approved messages only.
	FindApproved() ([]*Message, error)

	// FindAll returns every stored message, approved or not.
	FindAll() ([]*Message, error)
}
