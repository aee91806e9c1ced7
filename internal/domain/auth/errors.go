package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
