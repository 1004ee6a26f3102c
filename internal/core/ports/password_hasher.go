package ports

// PasswordHasher is the one-way credential hashing primitive. Implementations
// must embed the salt in the returned hash so Verify needs no side channel.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A malformed
	// hash returns false, never an error.
	Verify(plaintext, hash string) bool
}
