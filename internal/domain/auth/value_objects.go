package auth

import (
	"errors"
	"strings"
)

// bcrypt ignores input beyond 72 bytes
const maxPasswordBytes = 72

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	u := strings.TrimSpace(username)
	if u == "" {
		return Credentials{}, ErrEmptyUsername
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return Credentials{}, ErrPasswordTooLong
	}

	return Credentials{
		username: u,
		password: password,
	}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
