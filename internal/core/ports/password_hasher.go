package ports

// PasswordHasher is the one-way credential hashing contract.
type PasswordHasher interface {
	// Hash derives a salted hash; failure is an internal error.
	Hash(secret string) (string, error)
	// Verify reports whether secret matches hash. It never fails: a
	// malformed hash is simply a non-match.
	Verify(secret, hash string) bool
}
