package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
	"github.com/atmin009/tutor-admin/pkg/session"
)

type iService interface {
	LogIn(ctx context.Context, email, password string, remember bool) (string, *session.User, error)
	LogOut(ctx context.Context) error
}

type Handler struct {
	service iService
}

func NewHandler(s iService) *Handler {
	return &Handler{
		service: s,
	}
}

func (h Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	creds := &struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Remember bool   `json:"remember"`
	}{}
	if err := common.ParseReqBody(r.Body, creds); err != nil {
		logger.Log(r.Context()).Errorf("auth/handlers: can't parse request body as credentials: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	token, usr, err := h.service.LogIn(r.Context(), creds.Email, creds.Password, creds.Remember)
	if err != nil {
		platform.WriteError(w, err, "login failed")
		return
	}

	// The cookie covers page navigations; the SPA keeps using the bearer
	// token for API calls. A remembered login outlives the browser session.
	cookie := &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if creds.Remember {
		cookie.Expires = time.Now().Add(session.RememberTTL)
	}
	http.SetCookie(w, cookie)

	w.Header().Set("Authorization", `Bearer `+token)
	common.WriteData(w, struct {
		Token string        `json:"token"`
		User  *session.User `json:"user"`
	}{token, usr}, "login successful")
}

func (h Handler) LogOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LogOut(r.Context()); err != nil {
		logger.Log(r.Context()).Errorf("auth/handlers: logout failed: %v", err)
		common.WriteMsg(w, "logout failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:    session.CookieName,
		Value:   ``,
		Path:    "/",
		Expires: time.Unix(0, 0),
	})
	common.WriteMsg(w, "logged out", http.StatusOK)
}

func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		common.WriteMsg(w, "authorization required", http.StatusUnauthorized)
		return
	}
	common.WriteData(w, sess.User(), ``)
}
