// Package user provides account registration, authentication and lookup.
package user

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput       = errors.New("username, email and password are required")
	ErrAlreadyExists      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
