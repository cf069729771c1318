package session

import (
	"context"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/pbkdf2"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/logger"
)

// signingSalt pins the PBKDF2 derivation of the JWT key; changing it
// invalidates every issued token.
const signingSalt = "tutor-admin-session-v1"

var jwtSigningMethod = jwt.SigningMethodHS256

type iSessionRepo interface {
	Add(ctx context.Context, rec *Record) error
	Get(ctx context.Context, sessionID string) (*Record, error)
	Prolong(ctx context.Context, sessionID string, exp time.Time) error
	Destroy(ctx context.Context, sessionID string) error
}

type Manager struct {
	key  []byte
	repo iSessionRepo
}

type jwtClaims struct {
	User User `json:"user"`
	jwt.RegisteredClaims
}

func NewManager(secret string, sr iSessionRepo) *Manager {
	return &Manager{
		key:  pbkdf2.Key([]byte(secret), []byte(signingSalt), 4096, 32, sha256.New),
		repo: sr,
	}
}

// Create stores a durable session record for the given platform token and
// user, and returns the signed JWT handed to the browser. The remember flag
// selects the long-lived session scope.
func (m *Manager) Create(ctx context.Context, token string, u *User, remember bool) (string, error) {
	sessionID := common.RandStringRunes(32)

	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}
	exp := time.Now().Add(ttl)

	claims := jwtClaims{
		User: *u,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        sessionID,
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(m.key)
	if err != nil {
		return ``, err
	}

	err = m.repo.Add(ctx, &Record{
		ID:         sessionID,
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Token:      token,
		Remember:   remember,
		Expiration: exp,
	})
	if err != nil {
		return ``, err
	}

	return signed, nil
}

// SessionFromToken validates the browser JWT against the durable record and
// rebuilds the authenticated session.
func (m *Manager) SessionFromToken(ctx context.Context, authToken string) (*Session, error) {
	if authToken == `` {
		return nil, errors.New("session: auth token not found")
	}

	tokenString := strings.TrimPrefix(authToken, "Bearer ")
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}))

	claims := new(jwtClaims)
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("session: token is not valid")
	}

	rec, err := m.repo.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if now.After(rec.Expiration) {
		if err := m.repo.Destroy(ctx, rec.ID); err != nil {
			logger.Log(ctx).Errorf("session: can't destroy expired session, %v", err)
		}
		return nil, errors.New("session has been expired")
	}

	// Prolongate a remembered session that expires in less than 24 hours
	// because we don't want to kick off the active operator.
	if rec.Remember && rec.Expiration.Sub(now) < 24*time.Hour {
		if err := m.repo.Prolong(ctx, rec.ID, now.Add(RememberTTL)); err != nil {
			logger.Log(ctx).Errorf("session: can't prolong session, %v", err)
		}
	}

	return Resume(rec.ID, rec.Token, &User{ID: rec.UserID, Name: rec.Name, Email: rec.Email}), nil
}

func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	return m.repo.Destroy(ctx, sessionID)
}
