package service

import "time"

// TokenService defines the interface for issuing and validating bearer
// credentials. The core only requires "resolve credential → user id or
// failure"; the token mechanics stay behind this interface.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID int64) (accessToken string, refreshToken string, err error)

	// ResolveAccessToken validates an access token and returns the user id it
	// was issued for.
	ResolveAccessToken(tokenString string) (int64, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
