package session

import "errors"

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidName      = errors.New("name is required")
	ErrSecretNotSet     = errors.New("token secret is not set")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
)
