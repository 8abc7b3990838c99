package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "sitewright_session"
	maxFlashes        = 5
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Session is one visitor's wizard plus the notifications waiting to be shown.
// It is the wizard's Notifier.
type Session struct {
	ID     string
	Wizard *wizard.Wizard

	mu       sync.Mutex
	flashes  []Flash
	lastSeen time.Time
}

func (s *Session) Success(message string) { s.push("success", message) }
func (s *Session) Error(message string)   { s.push("error", message) }

// push queues a flash, dropping the oldest once the queue is full.
func (s *Session) push(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.flashes) >= maxFlashes {
		s.flashes = s.flashes[1:]
	}
	s.flashes = append(s.flashes, Flash{Kind: kind, Message: message})
}

// TakeFlashes returns and clears the pending notifications.
func (s *Session) TakeFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flashes
	s.flashes = nil
	return f
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionStore keeps wizard sessions in memory, keyed by a random cookie.
// Nothing is shared between sessions and nothing outlives the process.
// At most limit sessions are live; creating one beyond that evicts the
// longest idle.
type SessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	ttl       time.Duration
	limit     int
	newWizard func(n wizard.Notifier) *wizard.Wizard
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionStore creates a store whose sessions expire after ttl of inactivity.
// A limit of zero leaves the number of sessions unbounded.
// newWizard builds the wizard for each new session, reporting to the session.
func NewSessionStore(ttl time.Duration, limit int, newWizard func(n wizard.Notifier) *wizard.Wizard, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		sessions:  make(map[string]*Session),
		ttl:       ttl,
		limit:     limit,
		newWizard: newWizard,
		logger:    logger,
		now:       time.Now,
	}
}

// Get returns the live session with the given id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		sess.touch(st.now())
	}
	return sess, ok
}

// Create starts a new session with a fresh wizard.
func (st *SessionStore) Create() *Session {
	now := st.now()
	sess := &Session{ID: uuid.NewString(), lastSeen: now}
	sess.Wizard = st.newWizard(sess)

	var evicted *Session
	st.mu.Lock()
	if st.limit > 0 && len(st.sessions) >= st.limit {
		for _, s := range st.sessions {
			if evicted == nil || s.idleSince(now) > evicted.idleSince(now) {
				evicted = s
			}
		}
		delete(st.sessions, evicted.ID)
	}
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	if evicted != nil {
		evicted.Wizard.Reset()
		st.logger.Debug("Session evicted", "session", evicted.ID)
	}
	st.logger.Debug("Session created", "session", sess.ID)
	return sess
}

// Peek returns the caller's live session without creating one.
func (st *SessionStore) Peek(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, false
	}
	if _, err = uuid.Parse(c.Value); err != nil {
		return nil, false
	}
	return st.Get(c.Value)
}

// FromRequest returns the caller's session, creating one and setting the
// cookie when the request has none or its session has expired.
func (st *SessionStore) FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	if sess, ok := st.Peek(r); ok {
		return sess
	}
	sess := st.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
	})
	return sess
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than the TTL. Their wizards are reset,
// which cancels any generation still in flight.
func (st *SessionStore) Sweep() int {
	now := st.now()
	var expired []*Session

	st.mu.Lock()
	for id, sess := range st.sessions {
		if sess.idleSince(now) > st.ttl {
			expired = append(expired, sess)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, sess := range expired {
		sess.Wizard.Reset()
	}
	if len(expired) > 0 {
		st.logger.Debug("Swept idle sessions", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps on every interval until ctx is done.
func (st *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
