package configs

import "time"

// Auth configures session token issuance and the authorization failure
// policy.
type Auth struct {
	// Secret is the HMAC key for session tokens. It must be overridden
	// outside local development.
	Secret string `env:"SECRET" envDefault:"dev-secret-change-me"`
	// TokenTTL bounds how long an issued session stays valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	// FailOpen keeps the original fail-open permission resolution policy:
	// a caller whose membership cannot be resolved gets full access
	// instead of being locked out. Set to false for fail-closed.
	FailOpen bool `env:"FAIL_OPEN" envDefault:"true"`
}
