package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher performs one-way salted hashing of passwords. bcrypt
// embeds a fresh salt in every hash, so hashing the same password twice
// yields two different stored values, and comparison runs in time
// independent of where a mismatch occurs.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost factor.
// Costs outside the valid bcrypt range fall back to the default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives an opaque salted hash from the raw password.
func (h *PasswordHasher) Hash(rawPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether rawPassword matches the stored hash.
func (h *PasswordHasher) Verify(rawPassword, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(rawPassword)) == nil
}
