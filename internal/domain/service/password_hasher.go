// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm, keeping the domain pure.
type PasswordHasher interface {
	// Hash derives an encoded digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded digest.
	Check(password, digest string) bool

	// NeedsRehash reports whether digest was produced by a different algorithm
	// or weaker parameters than the hasher currently uses.
	NeedsRehash(digest string) bool
}
