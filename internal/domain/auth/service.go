package auth

import "context"

// AuthService is the shared-password admin gate.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
}
