package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atmin009/tutor-admin/pkg/session"
)

type staticToken string

func (s staticToken) Token(context.Context) string { return string(s) }

type countObserver struct {
	calls int
}

func (o *countObserver) AuthFailure(context.Context) { o.calls++ }

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": null, "message": "ok"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, staticToken("tok-1"), &countObserver{})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if err := c.Get(context.Background(), "/api/users", nil, nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want `Bearer tok-1`", gotAuth)
	}
}

func TestClientSendsNoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": null, "message": "ok"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, staticToken(""), &countObserver{})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if err := c.Post(context.Background(), "/api/auth/login", nil, nil); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if gotAuth != `` {
		t.Errorf("Authorization = %q, want no header for anonymous calls", gotAuth)
	}
}

func TestClientSurfacesStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "title is required"}`))
	}))
	defer srv.Close()

	obs := &countObserver{}
	c, err := NewClient(srv.URL, staticToken("tok"), obs)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	err = c.Post(context.Background(), "/api/courses", nil, nil)
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Status != http.StatusBadRequest || e.Message != "title is required" {
		t.Errorf("got %+v, want 400/title is required", e)
	}
	if obs.calls != 0 {
		t.Error("a validation failure must not trigger the auth-failure observer")
	}
}

func TestClientFallsBackToGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, staticToken("tok"), &countObserver{})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	err = c.Get(context.Background(), "/api/orders", nil, nil)
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Message != "platform request failed" {
		t.Errorf("Message = %q, want the generic marker", e.Message)
	}
}

func TestClientNotifiesObserverOnUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "token expired"}`))
	}))
	defer srv.Close()

	obs := &countObserver{}
	c, err := NewClient(srv.URL, staticToken("tok"), obs)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	err = c.Get(context.Background(), "/api/users", nil, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if obs.calls != 1 {
		t.Errorf("observer called %d times, want exactly once", obs.calls)
	}
}

type recordDestroyer struct {
	calls []string
}

func (d *recordDestroyer) Destroy(_ context.Context, sessionID string) error {
	d.calls = append(d.calls, sessionID)
	return nil
}

// Full forced-logout path: a live session makes a call, the platform says
// unauthorized, the session ends up anonymous and the caller still sees the
// error.
func TestForcedLogoutOnUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "unauthorized"}`))
	}))
	defer srv.Close()

	d := new(recordDestroyer)
	c, err := NewClient(srv.URL, session.ContextTokenSource{}, session.NewLogoutObserver(d))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	sess := session.Resume("sid-1", "tok-1", &session.User{ID: "1", Name: "A", Email: "a@x.com"})
	ctx := session.NewContext(context.Background(), sess)

	err = c.Get(ctx, "/api/users", nil, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("the error must still reach the caller, got %v", err)
	}
	if sess.IsLoggedIn() {
		t.Error("session must be anonymous after an unauthorized response")
	}
	if sess.Token() != `` {
		t.Error("token must be cleared after forced logout")
	}
	if len(d.calls) != 1 || d.calls[0] != "sid-1" {
		t.Errorf("durable record not destroyed exactly once, calls = %v", d.calls)
	}
}

func TestOtherErrorsLeaveSessionIntact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "already exists"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, session.ContextTokenSource{}, session.NewLogoutObserver(new(recordDestroyer)))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	sess := session.Resume("sid-1", "tok-1", &session.User{ID: "1"})
	ctx := session.NewContext(context.Background(), sess)

	if err := c.Post(ctx, "/api/teachers", nil, nil); err == nil {
		t.Fatal("expected an error for 409")
	}
	if !sess.IsLoggedIn() || sess.Token() != "tok-1" {
		t.Error("a non-auth failure must not touch the session")
	}
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want 2", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"data": [{"id": "c1"}], "meta": {"page": 2, "limit": 10, "totalItems": 11, "totalPages": 2}}, "message": ""}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, staticToken("tok"), &countObserver{})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	out := &struct {
		Data struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
			Meta Meta `json:"meta"`
		} `json:"data"`
	}{}
	q := ListQuery{Page: 2, Limit: 10}
	if err := c.Get(context.Background(), "/api/courses", q.Values(), out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(out.Data.Data) != 1 || out.Data.Data[0].ID != "c1" {
		t.Errorf("decoded items = %+v", out.Data.Data)
	}
	if out.Data.Meta.TotalPages != 2 {
		t.Errorf("meta = %+v, want totalPages 2", out.Data.Meta)
	}
}
