package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// SHA256Hasher produces the legacy digest: standard base64 of SHA-256 over the
// UTF-8 password bytes. It is unsalted and deterministic, so it is only used to
// verify digests created before argon2id became the default.
type SHA256Hasher struct{}

// NewSHA256Hasher returns the legacy hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash never fails.
func (h *SHA256Hasher) Hash(password string) (string, error) {
	return legacyDigest(password), nil
}

// Check compares digests in constant time.
func (h *SHA256Hasher) Check(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(legacyDigest(password)), []byte(digest)) == 1
}

// NeedsRehash is always false: the legacy format has no parameters.
func (h *SHA256Hasher) NeedsRehash(string) bool {
	return false
}

func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))

	return base64.StdEncoding.EncodeToString(sum[:])
}
