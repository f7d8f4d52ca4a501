package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher performs one-way password hashing with bcrypt. The salt
// embedded in each hash means hashing the same plaintext twice yields two
// different strings that both verify.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the storable hash of plain. The only failure mode is the
// hashing primitive itself being unable to run.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plain matches hash. A malformed hash is treated
// as a mismatch, never an error.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
