package pipeline

import "sync"

// Input sources.
const (
	SourceText  = "text"
	SourceImage = "image"
	SourceVoice = "voice"
)

// Subject is the single piece of text under analysis.
type Subject struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Session holds at most one subject and the analysis that produced it.
// Every successful cycle replaces both; there is no history.
type Session struct {
	mu       sync.Mutex
	analysis *Analysis
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Subject returns the current subject, if any.
func (s *Session) Subject() (Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return Subject{}, false
	}
	return s.analysis.Subject, true
}

// Analysis returns a copy of the last successful analysis, if any.
func (s *Session) Analysis() (Analysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return Analysis{}, false
	}
	return *s.analysis, true
}

func (s *Session) set(a Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = &a
}

// Reset drops the current subject.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = nil
}
