package session

import (
	"context"

	"github.com/atmin009/tutor-admin/pkg/logger"
)

// ContextTokenSource feeds the platform client with the bearer token of the
// session carried by the request context. Anonymous requests get no token.
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) string {
	sess, err := FromContext(ctx)
	if err != nil {
		return ``
	}
	return sess.Token()
}

type iSessionDestroyer interface {
	Destroy(ctx context.Context, sessionID string) error
}

// LogoutObserver is the auth-failure policy composed into the platform
// client: when the platform rejects a token, the session is logged out and
// its durable record removed. The rejection itself still propagates to the
// caller.
type LogoutObserver struct {
	sessions iSessionDestroyer
}

func NewLogoutObserver(sm iSessionDestroyer) *LogoutObserver {
	return &LogoutObserver{sessions: sm}
}

func (o *LogoutObserver) AuthFailure(ctx context.Context) {
	sess, err := FromContext(ctx)
	if err != nil {
		// Unauthenticated call (e.g. a failed login), nothing to clear.
		return
	}
	if id := sess.ID(); id != `` {
		if err := o.sessions.Destroy(ctx, id); err != nil {
			logger.Log(ctx).Errorf("session: can't destroy session on auth failure, %v", err)
		}
	}
	sess.Logout()
}
