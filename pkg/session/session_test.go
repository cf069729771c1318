package session

import (
	"context"
	"testing"
)

func TestSessionLoginLogout(t *testing.T) {
	sess := New()

	if sess.IsLoggedIn() {
		t.Error("new session must be anonymous")
	}
	if got := sess.Token(); got != `` {
		t.Errorf("anonymous session returned token %q", got)
	}

	usr := &User{ID: "1", Name: "A", Email: "a@x.com"}
	sess.Login("tok-1", usr)

	if !sess.IsLoggedIn() {
		t.Error("session must be authenticated after login")
	}
	if got := sess.Token(); got != "tok-1" {
		t.Errorf("Token() = %q, want tok-1", got)
	}
	if got := sess.User(); got == nil || got.Email != "a@x.com" {
		t.Errorf("User() = %+v, want a@x.com", got)
	}

	// A later login overwrites unconditionally.
	sess.Login("tok-2", &User{ID: "2", Name: "B", Email: "b@x.com"})
	if got := sess.Token(); got != "tok-2" {
		t.Errorf("Token() after second login = %q, want tok-2", got)
	}

	sess.Logout()
	if sess.IsLoggedIn() {
		t.Error("session must be anonymous after logout")
	}
	if got := sess.Token(); got != `` {
		t.Errorf("Token() after logout = %q, want empty", got)
	}
	if sess.User() != nil {
		t.Error("User() after logout must be nil")
	}
}

func TestSessionUserTokenInvariant(t *testing.T) {
	sess := New()
	sess.Login("tok", &User{ID: "1"})
	if (sess.Token() == ``) != (sess.User() == nil) {
		t.Error("token and user must be set together")
	}
	sess.Logout()
	if (sess.Token() == ``) != (sess.User() == nil) {
		t.Error("token and user must be cleared together")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	sess := New()
	sess.Login("tok", &User{ID: "1"})
	sess.Logout()
	sess.Logout()
	if sess.IsLoggedIn() {
		t.Error("double logout must leave the session anonymous")
	}
}

func TestContextRoundTrip(t *testing.T) {
	sess := Resume("sid", "tok", &User{ID: "1"})
	ctx := NewContext(context.Background(), sess)

	got, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("FromContext failed: %v", err)
	}
	if got != sess {
		t.Error("FromContext returned a different session")
	}

	if _, err := FromContext(context.Background()); err != ErrNoAuth {
		t.Errorf("FromContext on empty context = %v, want ErrNoAuth", err)
	}
}
