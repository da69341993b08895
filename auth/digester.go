// This file implements the password digesting side of the auth core.
// Plaintext passwords never leave this file in any stored form other than a
// salted bcrypt digest.
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordDigester produces and verifies salted one-way password digests
// using bcrypt. bcrypt is deliberately slow and adaptive: the configured cost
// factor makes offline brute force expensive, and can be raised over time as
// hardware improves without invalidating existing digests.
type PasswordDigester struct {
	cost int
}

// NewPasswordDigester creates a PasswordDigester with the given bcrypt cost.
// Costs outside the valid bcrypt range fall back to the default cost.
func NewPasswordDigester(cost int) *PasswordDigester {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordDigester{cost: cost}
}

// Hash produces a salted digest of the plaintext. The salt is generated
// randomly on every call and embedded in the digest output, so hashing the
// same plaintext twice yields different digests and verification needs no
// external salt storage.
func (d *PasswordDigester) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), d.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Match reports whether the plaintext matches the digest. The comparison is
// constant time. A malformed digest is never an error from the caller's point
// of view: it simply does not match.
func (d *PasswordDigester) Match(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
