// Package service defines interfaces for stateless domain logic that is
// implemented in infra, keeping use cases independent of concrete libraries.
package service

// PasswordHasher hashes and verifies passwords with an adaptive one-way function.
type PasswordHasher interface {
	// Hash returns a self-describing salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
