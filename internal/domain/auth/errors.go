package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPIN         = errors.New("invalid pin")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
