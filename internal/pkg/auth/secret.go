package auth

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
)

// KeyVerifier checks a presented API key against the configured secret.
type KeyVerifier interface {
	Verify(key string) bool
}

// SecretVerifier matches a presented key against a plain shared secret or
// against a bcrypt hash of it.
type SecretVerifier struct {
	secret []byte
	hashed bool
}

// NewSecretVerifier creates SecretVerifier that requires an exact match of secret.
func NewSecretVerifier(secret string) *SecretVerifier {
	return &SecretVerifier{secret: []byte(secret)}
}

// NewHashedSecretVerifier creates SecretVerifier that checks keys against a
// bcrypt hash.
func NewHashedSecretVerifier(hash string) *SecretVerifier {
	return &SecretVerifier{secret: []byte(hash), hashed: true}
}

// Verify reports whether key matches. An empty secret or key never matches.
func (v *SecretVerifier) Verify(key string) bool {
	if len(v.secret) == 0 || key == "" {
		return false
	}
	if v.hashed {
		return bcrypt.CompareHashAndPassword(v.secret, []byte(key)) == nil
	}
	// digests keep the comparison independent of the key length
	want := sha256.Sum256(v.secret)
	got := sha256.Sum256([]byte(key))
	return hmac.Equal(want[:], got[:])
}
