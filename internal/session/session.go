package session

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	demoUserID   int64 = 1
	demoUserName       = "John Doe"
)

// LoginInput carries the sign-in form. Password is accepted and ignored.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

// LoginIdentity builds the simulated sign-in identity. No credentials are checked.
func LoginIdentity(in LoginInput) (Identity, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Identity{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = demoUserName
	}

	return Identity{ID: demoUserID, Name: name, Email: email}, nil
}

// RegisterIdentity builds a new identity whose id is the registration time in millis.
func RegisterIdentity(in RegisterInput, now time.Time) (Identity, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Identity{}, err
	}

	name := strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName))
	if name == "" {
		return Identity{}, ErrInvalidName
	}

	return Identity{ID: now.UnixMilli(), Name: name, Email: email}, nil
}

func normalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return strings.ToLower(addr.Address), nil
}
