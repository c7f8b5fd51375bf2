package ports

// PasswordHasher produces and verifies salted one-way password digests.
// Verify relies on the algorithm's own constant-time comparison; no extra
// timing safety is layered on top.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
