// Package hash isolates the password hashing primitive so the algorithm and
// cost factor can evolve without touching the auth service.
package hash

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt. The salt is generated per hash
// and embedded in the output.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost factor. Costs outside
// bcrypt's valid range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// is treated as a mismatch, never an error.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
