package lyrics

import "errors"

// SyncType describes how precisely lyric lines are timed.
type SyncType string

const (
	Unsynced   SyncType = "unsynced"
	LineSynced SyncType = "line-synced"
	WordSynced SyncType = "word-synced"
)

var (
	ErrNotFound          = errors.New("lyrics not found")
	ErrUnsupportedSource = errors.New("unsupported lyrics source")
)

// Line is one timed lyric line. EndTimeMs is nil only for lines that have
// not been normalized yet.
type Line struct {
	StartTimeMs int64  `json:"start_time_ms"`
	EndTimeMs   *int64 `json:"end_time_ms,omitempty"`
	Text        string `json:"text"`
}

// End returns the end time and whether it is set.
func (l Line) End() (int64, bool) {
	if l.EndTimeMs == nil {
		return 0, false
	}
	return *l.EndTimeMs, true
}

// Contains reports whether ms falls in [start, end). A line without an end
// is open-ended.
func (l Line) Contains(ms int64) bool {
	if ms < l.StartTimeMs {
		return false
	}
	end, ok := l.End()
	return !ok || ms < end
}

// Lyrics is an ordered list of lines.
type Lyrics struct {
	SyncType SyncType `json:"sync_type"`
	Lines    []Line   `json:"lines"`
}

// DurationMs returns the end of the last line, or 0 for empty lyrics.
func (l *Lyrics) DurationMs() int64 {
	if l == nil || len(l.Lines) == 0 {
		return 0
	}
	last := l.Lines[len(l.Lines)-1]
	if end, ok := last.End(); ok {
		return end
	}
	return last.StartTimeMs
}

func ms(v int64) *int64 {
	return &v
}
