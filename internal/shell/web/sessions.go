package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aashnajoshi/TextSense/internal/pipeline"
)

// SessionCookie names the cookie that keys a browser to its session.
const SessionCookie = "textsense_session"

const sessionIdle = time.Hour

type sessionEntry struct {
	session  *pipeline.Session
	lastSeen time.Time
}

// sessions keeps one pipeline session per browser.
type sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	now     func() time.Time
}

func newSessions() *sessions {
	return &sessions{entries: make(map[string]*sessionEntry), now: time.Now}
}

// get returns the session for r. When the request carries no known
// session id a new one is created and the cookie to set is returned.
func (s *sessions) get(r *http.Request) (*pipeline.Session, *http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if c, err := r.Cookie(SessionCookie); err == nil {
		if e, ok := s.entries[c.Value]; ok {
			e.lastSeen = now
			return e.session, nil
		}
	}

	s.prune(now)
	id := uuid.NewString()
	e := &sessionEntry{session: pipeline.NewSession(), lastSeen: now}
	s.entries[id] = e

	return e.session, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// prune drops sessions idle for longer than sessionIdle. Callers hold mu.
func (s *sessions) prune(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > sessionIdle {
			delete(s.entries, id)
		}
	}
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
