package player

import (
	"errors"
	"sync"
	"time"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

var ErrNoLyrics = errors.New("no lyrics loaded")

// Frame is what should be on screen at one moment of playback.
type Frame struct {
	TimeMs int64            `json:"time_ms"`
	Line   *lyrics.Line     `json:"line,omitempty"`
	Items  []tokenizer.Item `json:"items"`
}

// Session tracks playback position over loaded lyrics. It stands in for the
// audio transport: callers drive it with Tick while audio plays.
type Session struct {
	mu       sync.RWMutex
	lyrics   *lyrics.Lyrics
	position int64
	playing  bool
	held     *lyrics.Line

	cache *tokenizer.Cached
}

// NewSession creates a session that tokenizes with tok.
func NewSession(tok *tokenizer.Tokenizer) *Session {
	return &Session{cache: tokenizer.NewCached(tok)}
}

// Load replaces the lyrics and rewinds to the start.
func (s *Session) Load(l *lyrics.Lyrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lyrics = l
	s.position = 0
	s.playing = false
	s.held = nil
}

// Lyrics returns the loaded lyrics, or nil.
func (s *Session) Lyrics() *lyrics.Lyrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lyrics
}

func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lyrics == nil {
		return ErrNoLyrics
	}
	s.playing = true
	return nil
}

func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

func (s *Session) Playing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

func (s *Session) Position() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// Seek moves to ms, clamped to the lyrics duration.
func (s *Session) Seek(ms int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lyrics == nil {
		return ErrNoLyrics
	}
	s.seekLocked(ms)
	s.held = nil
	return nil
}

// Skip moves by deltaMs, which may be negative.
func (s *Session) Skip(deltaMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lyrics == nil {
		return ErrNoLyrics
	}
	s.seekLocked(s.position + deltaMs)
	s.held = nil
	return nil
}

// Tick advances the position by elapsed while playing. Playback stops at the
// end of the lyrics. It reports whether the position changed.
func (s *Session) Tick(elapsed time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.playing || s.lyrics == nil {
		return false
	}
	before := s.position
	s.seekLocked(s.position + elapsed.Milliseconds())
	if s.position >= s.lyrics.DurationMs() {
		s.playing = false
	}
	return s.position != before
}

func (s *Session) seekLocked(ms int64) {
	if ms < 0 {
		ms = 0
	}
	if d := s.lyrics.DurationMs(); ms > d {
		ms = d
	}
	s.position = ms
}

// Current returns the frame at the playback position. Inside a gap between
// lines the previous line stays on screen until the next one starts or the
// position jumps.
func (s *Session) Current() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lyrics == nil {
		return Frame{TimeMs: s.position}
	}
	line, ok := lyrics.ActiveLine(s.lyrics.Lines, s.position)
	if ok {
		s.held = &line
	}
	if s.held == nil {
		return Frame{TimeMs: s.position}
	}
	line = *s.held
	return Frame{
		TimeMs: s.position,
		Line:   &line,
		Items:  s.cache.TokenizeLine(line.Text),
	}
}

// At returns the frame at ms without moving the session. It depends only on
// the lyrics and ms, so repeated calls give identical frames.
func (s *Session) At(ms int64) Frame {
	s.mu.RLock()
	l := s.lyrics
	s.mu.RUnlock()
	return FrameAt(l, s.cache, ms)
}

// LineTokenizer is satisfied by tokenizer.Tokenizer and tokenizer.Cached.
type LineTokenizer interface {
	TokenizeLine(text string) []tokenizer.Item
}

// FrameAt builds the frame for ms from l using tok.
func FrameAt(l *lyrics.Lyrics, tok LineTokenizer, ms int64) Frame {
	if l == nil {
		return Frame{TimeMs: ms}
	}
	line, ok := lyrics.ActiveLine(l.Lines, ms)
	if !ok {
		return Frame{TimeMs: ms}
	}
	return Frame{TimeMs: ms, Line: &line, Items: tok.TokenizeLine(line.Text)}
}
