// Package session implements the in-memory session store.
//
// Sessions live for the lifetime of the process only and are keyed by the
// account's email: at most one session exists per account, and a new login
// replaces (and silently invalidates) any prior session for that email.
package session

import (
	"sync"
	"time"
)

// Session is a server-side record identifying an authenticated caller.
type Session struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"session_id"`
	CreatedAt time.Time `json:"-"`
}

// Store holds active sessions keyed by email. All methods are safe for
// concurrent use; login/logout races on the same account are last-write-wins.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{byEmail: make(map[string]Session)}
}

// Put stores the session, replacing any existing session for the same email.
func (s *Store) Put(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byEmail[sess.Email] = sess
}

// GetByToken returns the session holding the given token, if any.
func (s *Store) GetByToken(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.byEmail {
		if sess.Token == token {
			return sess, true
		}
	}
	return Session{}, false
}

// GetByEmail returns the active session for the given email, if any.
func (s *Store) GetByEmail(email string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byEmail[email]
	return sess, ok
}

// DeleteByToken removes the session holding the given token and returns it.
// Returns false if no session holds the token.
func (s *Store) DeleteByToken(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, sess := range s.byEmail {
		if sess.Token == token {
			delete(s.byEmail, email)
			return sess, true
		}
	}
	return Session{}, false
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}
