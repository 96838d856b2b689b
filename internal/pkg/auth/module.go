package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/config"
)

// Module provides the notify key verifier via fx.
var Module = fx.Provide(newKeyVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newKeyVerifier(p verifierParams) KeyVerifier {
	if p.Config.NotifySecretHash != "" {
		return NewHashedSecretVerifier(p.Config.NotifySecretHash)
	}
	return NewSecretVerifier(p.Config.NotifySecret)
}
