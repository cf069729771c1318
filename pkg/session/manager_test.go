package session

import (
	"context"
	"testing"
	"time"
)

type memRepo struct {
	recs map[string]*Record
}

func newMemRepo() *memRepo {
	return &memRepo{recs: map[string]*Record{}}
}

func (r *memRepo) Add(_ context.Context, rec *Record) error {
	r.recs[rec.ID] = rec
	return nil
}

func (r *memRepo) Get(_ context.Context, sessionID string) (*Record, error) {
	rec, ok := r.recs[sessionID]
	if !ok {
		return nil, ErrNoAuth
	}
	return rec, nil
}

func (r *memRepo) Prolong(_ context.Context, sessionID string, exp time.Time) error {
	r.recs[sessionID].Expiration = exp
	return nil
}

func (r *memRepo) Destroy(_ context.Context, sessionID string) error {
	delete(r.recs, sessionID)
	return nil
}

func TestManagerCreateAndResume(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	m := NewManager("secret", repo)

	usr := &User{ID: "1", Name: "A", Email: "a@x.com"}
	token, err := m.Create(ctx, "platform-tok", usr, false)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(repo.recs) != 1 {
		t.Fatalf("expected one durable record, got %d", len(repo.recs))
	}

	sess, err := m.SessionFromToken(ctx, "Bearer "+token)
	if err != nil {
		t.Fatalf("SessionFromToken failed: %v", err)
	}
	if got := sess.Token(); got != "platform-tok" {
		t.Errorf("resumed session token = %q, want platform-tok", got)
	}
	if got := sess.User().Email; got != "a@x.com" {
		t.Errorf("resumed session user = %q, want a@x.com", got)
	}
}

func TestManagerRejectsDestroyedSession(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	m := NewManager("secret", repo)

	token, err := m.Create(ctx, "platform-tok", &User{ID: "1"}, false)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	sess, err := m.SessionFromToken(ctx, "Bearer "+token)
	if err != nil {
		t.Fatalf("SessionFromToken failed: %v", err)
	}
	if err := m.Destroy(ctx, sess.ID()); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	if _, err := m.SessionFromToken(ctx, "Bearer "+token); err == nil {
		t.Error("a destroyed session must not resume")
	}
}

func TestManagerRejectsExpiredRecord(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	m := NewManager("secret", repo)

	token, err := m.Create(ctx, "platform-tok", &User{ID: "1"}, false)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, rec := range repo.recs {
		rec.Expiration = time.Now().Add(-time.Hour)
	}

	if _, err := m.SessionFromToken(ctx, "Bearer "+token); err == nil {
		t.Error("an expired session must not resume")
	}
	if len(repo.recs) != 0 {
		t.Error("an expired record must be destroyed on access")
	}
}

func TestManagerRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	token, err := NewManager("other-secret", repo).Create(ctx, "tok", &User{ID: "1"}, false)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := NewManager("secret", repo).SessionFromToken(ctx, "Bearer "+token); err == nil {
		t.Error("a token signed with a different secret must be rejected")
	}
}

func TestManagerProlongsRememberedSession(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	m := NewManager("secret", repo)

	token, err := m.Create(ctx, "tok", &User{ID: "1"}, true)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	var id string
	for _, rec := range repo.recs {
		id = rec.ID
		rec.Expiration = time.Now().Add(time.Hour)
	}

	if _, err := m.SessionFromToken(ctx, "Bearer "+token); err != nil {
		t.Fatalf("SessionFromToken failed: %v", err)
	}
	if until := time.Until(repo.recs[id].Expiration); until < 24*time.Hour {
		t.Errorf("remembered session was not prolonged, expires in %v", until)
	}
}

type countDestroyer struct {
	calls []string
}

func (d *countDestroyer) Destroy(_ context.Context, sessionID string) error {
	d.calls = append(d.calls, sessionID)
	return nil
}

func TestLogoutObserver(t *testing.T) {
	d := new(countDestroyer)
	obs := NewLogoutObserver(d)

	sess := Resume("sid-1", "tok-1", &User{ID: "1"})
	ctx := NewContext(context.Background(), sess)

	obs.AuthFailure(ctx)

	if sess.IsLoggedIn() {
		t.Error("session must be anonymous after auth failure")
	}
	if len(d.calls) != 1 || d.calls[0] != "sid-1" {
		t.Errorf("durable record not destroyed, calls = %v", d.calls)
	}
}

func TestLogoutObserverWithoutSession(t *testing.T) {
	d := new(countDestroyer)
	obs := NewLogoutObserver(d)

	// A failed unauthenticated call (e.g. bad login) has no session to clear.
	obs.AuthFailure(context.Background())

	if len(d.calls) != 0 {
		t.Errorf("nothing to destroy for an anonymous context, calls = %v", d.calls)
	}
}
