// Package pinlock hashes and verifies the optional app PIN. Only the bcrypt
// hash ever touches disk.
package pinlock

import "golang.org/x/crypto/bcrypt"

// PINLength is the fixed PIN length the UI collects.
const PINLength = 4

// Hash derives a bcrypt hash for the given PIN.
func Hash(pin string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
}

// Verify reports whether pin matches the stored hash.
func Verify(hash []byte, pin string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(pin)) == nil
}
