package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated address, lowercase-normalized so lookups are
// case-insensitive regardless of how the client typed it.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Credential is a plaintext password that passed the minimum-length policy.
// It never stores a hash; hashing lives at the infrastructure edge.
type Credential struct {
	value string
}

func NewCredential(s string) (Credential, error) {
	if len(s) < 8 {
		return Credential{}, ErrWeakPassword
	}
	return Credential{value: s}, nil
}

func (c Credential) Value() string {
	return c.value
}
