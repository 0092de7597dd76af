package auth

import "context"

// AuthService defines business logic for session issuance. The role
// carried by the session is decided here, in one place: the configured
// admin address gets the admin role, everyone else is an employee.
type AuthService interface {
	// Login authenticates email/password credentials and issues tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle issues tokens for a verified Google account whose
	// email matches an existing user
	LoginWithGoogle(ctx context.Context, email string) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the presented refresh token
	Logout(ctx context.Context, refreshToken string) error

	// CurrentSession returns the identity bound to the context's claims
	CurrentSession(ctx context.Context) (SessionResponse, error)

	// SSEToken issues a short-lived token for the event stream endpoint
	SSEToken(ctx context.Context) (SSETokenResponse, error)
}
