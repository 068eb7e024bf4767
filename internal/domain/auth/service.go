package auth

import "context"

// AuthService authenticates workers and manages token lifecycle.
type AuthService interface {
	// Login authenticates with username and password
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithPIN authenticates with a kiosk pin; lookup is exact-match
	// and fails closed when the pin matches no worker
	LoginWithPIN(ctx context.Context, req PINLoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
