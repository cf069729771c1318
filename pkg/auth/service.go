package auth

import (
	"context"
	"fmt"

	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/session"
)

type iPlatform interface {
	Post(ctx context.Context, path string, body, out interface{}) error
}

type iSessionManager interface {
	Create(ctx context.Context, token string, u *session.User, remember bool) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}

type service struct {
	api iPlatform
	sm  iSessionManager
}

func NewService(api iPlatform, sm iSessionManager) *service {
	return &service{
		api: api,
		sm:  sm,
	}
}

type loginEnvelope struct {
	Data struct {
		Token string       `json:"token"`
		User  session.User `json:"user"`
	} `json:"data"`
	Message string `json:"message"`
}

// LogIn forwards the credentials to the platform and, on success, opens a
// durable gateway session around the returned bearer token.
func (s *service) LogIn(ctx context.Context, email, password string, remember bool) (string, *session.User, error) {
	creds := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	out := new(loginEnvelope)
	if err := s.api.Post(ctx, "/api/auth/login", creds, out); err != nil {
		logger.Log(ctx).Errorf("auth: platform login failed for `%s`, %v", email, err)
		return ``, nil, err
	}

	usr := out.Data.User
	token, err := s.sm.Create(ctx, out.Data.Token, &usr, remember)
	if err != nil {
		logger.Log(ctx).Errorf("auth: can't create session, %v", err)
		return ``, nil, fmt.Errorf("auth: can't create session, %w", err)
	}

	return token, &usr, nil
}

func (s *service) LogOut(ctx context.Context) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}
	if id := sess.ID(); id != `` {
		if err := s.sm.Destroy(ctx, id); err != nil {
			return fmt.Errorf("auth: can't destroy session, %w", err)
		}
	}
	sess.Logout()
	return nil
}
