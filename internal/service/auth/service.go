package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	"github.com/brewhr/brewhr-backend-go/internal/domain/auth"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/jwt"
)

// AuthServiceImpl compares the shared admin password against the
// configured bcrypt hash and issues session tokens. There are no user
// accounts; everyone behind the counter shares one credential.
type AuthServiceImpl struct {
	passwordHash string
	jwtService   jwt.Service
}

func NewAuthService(cfg config.AuthConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		passwordHash: cfg.AdminPasswordHash,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken()
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService. Revocation is in-memory; a
// restart forgets revoked tokens but they still expire on schedule.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}
