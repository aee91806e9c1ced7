package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and revokes the admin session tokens. Access is a
// single shared admin role, so tokens carry no user identity beyond
// their type.
type Service interface {
	GenerateAccessToken() (token string, expiresAt int64, err error)
	GenerateSSEToken() (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) error
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessExpiration string
	tokenAuth        *jwtauth.JWTAuth
	revokedTokens    map[string]int64
	mu               sync.RWMutex
}

func NewJWTService(secretKey string, accessExpiration string) Service {
	return &JWTService{
		accessExpiration: accessExpiration,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:    make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken() (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"role": "admin",
		"type": "access",
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// GenerateSSEToken issues a short-lived token for the EventSource
// handshake, which cannot set an Authorization header.
func (j *JWTService) GenerateSSEToken() (token string, expiresIn int, err error) {
	expiresIn = 300
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"role": "admin",
		"type": "sse",
		"exp":  expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

func (j *JWTService) ValidateSSEToken(tokenString string) error {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "sse" {
		return jwt.ErrInvalidJWT()
	}

	return nil
}
