package auth

// PasswordHasher abstracts the slow salted hash used for stored passwords.
// The production implementation is bcrypt (infrastructure/security).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// IDGenerator produces a short alphanumeric identifier of the given length.
// Wired to shared.GenerateShortID with the configured salt.
type IDGenerator func(length int) string
