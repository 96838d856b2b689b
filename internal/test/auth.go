package test

import pkgAuth "github.com/polkiloo/ordertrack/internal/pkg/auth"

// KeyVerifierStub accepts only Key unless VerifyFn overrides it.
type KeyVerifierStub struct {
	Key      string
	VerifyFn func(string) bool
}

// Verify compares key with the configured one.
func (s KeyVerifierStub) Verify(key string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(key)
	}
	return s.Key != "" && key == s.Key
}

var _ pkgAuth.KeyVerifier = KeyVerifierStub{}
