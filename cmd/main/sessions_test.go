package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CTAG07/Sitewright/pkg/wizard"
)

// blockingGenerator never finishes on its own.
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, data wizard.WebsiteData) (wizard.WebsiteData, error) {
	<-ctx.Done()
	return data, ctx.Err()
}

func newTestStore(gen wizard.Generator) (*SessionStore, *time.Time) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	st := NewSessionStore(time.Hour, 0, func(n wizard.Notifier) *wizard.Wizard {
		return wizard.New(wizard.WithNotifier(n), wizard.WithGenerator(gen))
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	st.now = func() time.Time { return now }
	return st, &now
}

func TestSessionStore_FromRequest(t *testing.T) {
	st, _ := newTestStore(blockingGenerator{})

	rec := httptest.NewRecorder()
	sess := st.FromRequest(rec, httptest.NewRequest(http.MethodGet, "/build", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != sess.ID || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}

	// The same cookie returns the same session and sets no new cookie.
	req := httptest.NewRequest(http.MethodGet, "/build", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	if got := st.FromRequest(rec, req); got != sess {
		t.Error("FromRequest() with a valid cookie returned a different session")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("FromRequest() reissued a cookie for a live session")
	}

	// Malformed and unknown ids get a fresh session.
	for _, value := range []string{"not-a-uuid", "6f1c9d3e-0000-4000-8000-000000000000"} {
		req = httptest.NewRequest(http.MethodGet, "/build", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: value})
		rec = httptest.NewRecorder()
		if got := st.FromRequest(rec, req); got == sess || got.ID == value {
			t.Errorf("cookie %q should have created a new session", value)
		}
	}
	if st.Len() != 3 {
		t.Errorf("Len() = %d, want 3", st.Len())
	}
}

func TestSessionStore_Sweep(t *testing.T) {
	st, now := newTestStore(blockingGenerator{})

	idle := st.Create()
	if err := idle.Wizard.SetAll(map[wizard.Field]string{
		wizard.FieldBusinessName: "Idle Co",
		wizard.FieldBusinessType: "consulting",
	}); err != nil {
		t.Fatalf("SetAll() failed: %v", err)
	}
	if err := idle.Wizard.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	outcome, err := idle.Wizard.Start(context.Background())
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	*now = now.Add(45 * time.Minute)
	active := st.Create()

	*now = now.Add(30 * time.Minute)
	if n := st.Sweep(); n != 1 {
		t.Fatalf("Sweep() removed %d sessions, want 1", n)
	}
	if _, ok := st.Get(idle.ID); ok {
		t.Error("idle session survived the sweep")
	}
	if _, ok := st.Get(active.ID); !ok {
		t.Error("active session was swept")
	}

	// Sweeping resets the wizard, which cancels its generation.
	select {
	case res := <-outcome:
		if res.Err == nil {
			t.Error("expected the swept generation to fail")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("generation was not cancelled by the sweep")
	}
}

func TestSession_Flashes(t *testing.T) {
	sess := &Session{}
	for i := 0; i < maxFlashes+2; i++ {
		sess.Success("ok")
	}
	sess.Error("boom")

	flashes := sess.TakeFlashes()
	if len(flashes) != maxFlashes {
		t.Fatalf("got %d flashes, want %d", len(flashes), maxFlashes)
	}
	if last := flashes[len(flashes)-1]; last.Kind != "error" || last.Message != "boom" {
		t.Errorf("last flash = %+v, want the error", last)
	}
	if len(sess.TakeFlashes()) != 0 {
		t.Error("TakeFlashes() should clear the queue")
	}
}

func TestSessionStore_Peek(t *testing.T) {
	st, _ := newTestStore(blockingGenerator{})

	if _, ok := st.Peek(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("Peek() without a cookie found a session")
	}
	if st.Len() != 0 {
		t.Errorf("Peek() created a session, Len() = %d", st.Len())
	}

	sess := st.Create()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sess.ID})
	if got, ok := st.Peek(req); !ok || got != sess {
		t.Error("Peek() with a live cookie should return its session")
	}
}

func TestSessionStore_Limit(t *testing.T) {
	st, now := newTestStore(blockingGenerator{})
	st.limit = 2

	first := st.Create()
	*now = now.Add(time.Minute)
	second := st.Create()
	*now = now.Add(time.Minute)
	st.Get(first.ID)

	third := st.Create()
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", st.Len())
	}
	if _, ok := st.Get(second.ID); ok {
		t.Error("the longest idle session should have been evicted")
	}
	for _, sess := range []*Session{first, third} {
		if _, ok := st.Get(sess.ID); !ok {
			t.Errorf("session %s was evicted", sess.ID)
		}
	}
}
