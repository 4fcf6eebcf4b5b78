package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
)

// Source reads lyrics from local .lrc and .txt files. LRC files are parsed
// as synced lyrics, anything else as plain text.
type Source struct {
	lastLineMs int64
	plainMs    int64
}

func NewSource(lastLineMs, plainMs int64) *Source {
	return &Source{lastLineMs: lastLineMs, plainMs: plainMs}
}

func (s *Source) Name() string {
	return "file"
}

// Handles accepts paths with a .lrc or .txt extension.
func (s *Source) Handles(ref string) bool {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".lrc", ".txt":
		return !strings.Contains(ref, "://")
	}
	return false
}

func (s *Source) Fetch(ctx context.Context, ref string) (*lyrics.Lyrics, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", lyrics.ErrNotFound, ref)
		}
		return nil, fmt.Errorf("failed to read %s: %w", ref, err)
	}
	return Parse(string(data), strings.EqualFold(filepath.Ext(ref), ".lrc"), s.lastLineMs, s.plainMs), nil
}

// Parse reads text as LRC when lrc is set, falling back to plain lines when
// no line carries a time tag.
func Parse(text string, lrc bool, lastLineMs, plainMs int64) *lyrics.Lyrics {
	if lrc {
		if l := lyrics.ParseLRC(text, lastLineMs); len(l.Lines) > 0 && l.SyncType != lyrics.Unsynced {
			return l
		}
	}
	return lyrics.FromPlain(text, plainMs)
}
