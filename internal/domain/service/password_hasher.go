// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret. Two calls with
	// the same input produce different hashes.
	Hash(plaintext string) (string, error)

	// Check compares a plaintext secret with a hash. A mismatch is not an
	// error; it simply returns false.
	Check(plaintext, hash string) bool
}
