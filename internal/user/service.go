package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repository Repository
	bcryptCost int
	now        func() time.Time
}

func NewService(repository Repository) *Service {
	return &Service{
		repository: repository,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// bcrypt rejects longer passwords with bcrypt.ErrPasswordTooLong.
const maxPasswordBytes = 72

// CreateUser registers a new account. The username is trimmed and the email is trimmed and lower-cased.
func (s *Service) CreateUser(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return User{}, ErrInvalidInput
	}
	if len(password) > maxPasswordBytes {
		return User{}, fmt.Errorf("%w: password is longer than %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	_, err := s.repository.FindByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return User{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("repository.FindByUsernameOrEmail > %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("bcrypt.GenerateFromPassword > %w", err)
	}

	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}
	if err := s.repository.Create(ctx, &user); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return User{}, ErrAlreadyExists
		}
		return User{}, fmt.Errorf("repository.Create > %w", err)
	}
	return user, nil
}

// Authenticate returns the user whose username or email is identifier and whose password matches.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	user, err := s.repository.FindByUsernameOrEmail(ctx, identifier, strings.ToLower(identifier))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("repository.FindByUsernameOrEmail > %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (User, error) {
	user, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("repository.FindByID > %w", err)
	}
	return user, nil
}
