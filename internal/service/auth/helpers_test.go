package auth

import (
	"time"

	"github.com/phrazzld/barbell-api/internal/config"
)

// testAuthConfig builds an AuthConfig with sensible test lifetimes and the
// given secret.
func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   secret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: int((7 * 24 * time.Hour).Minutes()),
	}
}
