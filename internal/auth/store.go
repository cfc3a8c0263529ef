package auth

import "sync"

// User is a registered account. PasswordHash is the bcrypt digest, never the
// plaintext.
type User struct {
	Email        string
	Name         string
	PasswordHash string
}

// PublicUser is the view of a user that may appear in responses.
type PublicUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public strips the credential hash.
func (u User) Public() PublicUser {
	return PublicUser{Email: u.Email, Name: u.Name}
}

// Store is an in-memory credential directory keyed by email. Accounts live
// for the lifetime of the process. Insert is atomic: under concurrent
// registration of the same email at most one caller wins.
type Store struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewStore returns an empty credential store.
func NewStore() *Store {
	return &Store{users: make(map[string]User)}
}

// Lookup returns the user registered under email, if any.
func (s *Store) Lookup(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	return u, ok
}

// Insert adds a user unless the email is already taken. The check and the
// write happen under one lock so duplicate registrations cannot race past
// each other.
func (s *Store) Insert(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return ErrAlreadyRegistered
	}
	s.users[user.Email] = user
	return nil
}

// Len reports the number of registered users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
