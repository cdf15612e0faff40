package main

import (
	"facts/pkg/feed"
	"facts/pkg/models"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	sessionCookieName  = "facts_session"
	sessionIdleTimeout = 30 * time.Minute
)

// session is one viewer: its own feed controller and the form they are filling in.
type session struct {
	feed *feed.Feed

	mu      sync.Mutex
	draft   models.Draft
	patched bool

	// guarded by sessions.mu
	lastSeen time.Time
}

func (ss *session) Draft() models.Draft {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.draft
}

// markPatched records that the list was just updated in place by a vote or a
// submission, so the next page load shows it as is.
func (ss *session) markPatched() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.patched = true
}

// takePatched reports and clears the flag set by markPatched.
func (ss *session) takePatched() bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	patched := ss.patched
	ss.patched = false
	return patched
}

// sessions holds the live viewers. A session unused for longer than the idle
// timeout is dropped on the next sweep, along with its feed.
type sessions struct {
	mu        sync.Mutex
	byID      map[string]*session
	newFeed   func() *feed.Feed
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func newSessions(newFeed func() *feed.Feed) *sessions {
	return &sessions{
		byID:    make(map[string]*session),
		newFeed: newFeed,
		idle:    sessionIdleTimeout,
		now:     time.Now,
	}
}

// get returns the caller's session, creating one and setting the cookie when needed.
func (s *sessions) get(w http.ResponseWriter, r *http.Request) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	if c, err := r.Cookie(sessionCookieName); err == nil {
		if ss, ok := s.byID[c.Value]; ok {
			ss.lastSeen = now
			return ss
		}
	}

	id := uuid.NewString()
	ss := &session{feed: s.newFeed(), lastSeen: now}
	s.byID[id] = ss

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ss
}

// sweep drops idle sessions, at most once per tenth of the idle timeout.
// Callers hold s.mu.
func (s *sessions) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.idle/10 {
		return
	}
	s.lastSweep = now

	for id, ss := range s.byID {
		if now.Sub(ss.lastSeen) > s.idle {
			delete(s.byID, id)
		}
	}
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
