package middleware

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/session"
)

type (
	ISessionManager interface {
		SessionFromToken(ctx context.Context, authToken string) (*session.Session, error)
	}
	Auth struct {
		SessionManager ISessionManager
		noAuthUrls     map[string]struct{}
	}
)

func NewAuthMiddleware(sm ISessionManager, noAuthUrls map[string]struct{}) *Auth {
	return &Auth{
		SessionManager: sm,
		noAuthUrls:     noAuthUrls,
	}
}

// Middleware guards the dashboard API: requests without a live session get
// 401 and never reach the handler.
func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.noAuthUrls[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := auth.SessionManager.SessionFromToken(r.Context(), tokenFromRequest(r))
		if err != nil {
			logger.Log(r.Context()).Errorf("middleware/auth: can't resolve session from token: %v", err)
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		ctx := session.NewContext(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GuardPage guards SPA navigations: an anonymous request for a protected
// view is redirected to the login view instead of rendering it. The login
// view itself and static assets pass through.
func (auth Auth) GuardPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" || strings.Contains(path.Base(r.URL.Path), ".") {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := auth.SessionManager.SessionFromToken(r.Context(), tokenFromRequest(r))
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := session.NewContext(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest prefers the Authorization header and falls back to the
// session cookie, which is what page navigations carry.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != `` {
		return header
	}
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		return cookie.Value
	}
	return ``
}
