package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

type sessionKey string

const SessionKey sessionKey = "authenticatedSession"

const CookieName = "tutor_admin_session"

const (
	// RememberTTL is the session lifetime when the operator asked to stay
	// logged in, SessionTTL otherwise.
	RememberTTL = 90 * 24 * time.Hour
	SessionTTL  = 24 * time.Hour
)

var ErrNoAuth = errors.New("session: no session found")

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session holds the operator's authentication state: the platform bearer
// token and the user it belongs to. The token is set if and only if the
// user is set.
type Session struct {
	mu    sync.RWMutex
	id    string
	token string
	user  *User
}

// New returns an anonymous session.
func New() *Session {
	return &Session{}
}

// Resume rebuilds an authenticated session from its durable record.
func Resume(id, token string, u *User) *Session {
	return &Session{id: id, token: token, user: u}
}

// Login unconditionally replaces the session's token and user.
func (s *Session) Login(token string, u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = u
}

// Logout clears the token and user, making the session anonymous.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ``
	s.user = nil
}

// Token returns the platform bearer token, or an empty string for an
// anonymous session.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ``
}

// Record is the durable copy of a session kept in the sessions table.
type Record struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Token      string
	Remember   bool
	Expiration time.Time
}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

func FromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(SessionKey).(*Session)
	if !ok || sess == nil {
		return nil, ErrNoAuth
	}
	return sess, nil
}
