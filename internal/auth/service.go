// Package auth implements account registration and login over an in-process
// credential directory.
package auth

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingFields signals an incomplete request body.
	ErrMissingFields = errors.New("All fields are required")
	// ErrAlreadyRegistered signals a duplicate registration.
	ErrAlreadyRegistered = errors.New("Email already registered")
	// ErrUserNotFound signals a login for an unknown email.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidPassword signals a failed credential check.
	ErrInvalidPassword = errors.New("Invalid password")
	// ErrPasswordTooLong signals a password beyond bcrypt's 72 byte limit.
	ErrPasswordTooLong = errors.New("Password too long")
)

// Service is the registration and login workflow.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService constructs the workflow over the given store.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger.Named("auth_service")}
}

// Register creates an account. The password is stored only as a bcrypt hash.
func (s *Service) Register(email, password, name string) (PublicUser, error) {
	if email == "" || password == "" || name == "" {
		return PublicUser{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return PublicUser{}, ErrPasswordTooLong
		}
		return PublicUser{}, err
	}

	user := User{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.store.Insert(user); err != nil {
		return PublicUser{}, err
	}

	s.logger.Info("user registered", zap.String("email", email))
	return user.Public(), nil
}

// Login verifies credentials for a registered email.
func (s *Service) Login(email, password string) (PublicUser, error) {
	if email == "" || password == "" {
		return PublicUser{}, ErrMissingFields
	}

	user, ok := s.store.Lookup(email)
	if !ok {
		return PublicUser{}, ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return PublicUser{}, ErrInvalidPassword
	}

	return user.Public(), nil
}
