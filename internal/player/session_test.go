package player

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

func testLyrics() *lyrics.Lyrics {
	return lyrics.ParseLRC(
		"[00:01.00]I Like It Like It\n"+
			"[00:03.00]Ae Chammak Challo\n",
		4000,
	)
}

func TestNoLyrics(t *testing.T) {
	s := NewSession(tokenizer.Default())
	if err := s.Play(); !errors.Is(err, ErrNoLyrics) {
		t.Errorf("Play error = %v, want ErrNoLyrics", err)
	}
	if err := s.Seek(10); !errors.Is(err, ErrNoLyrics) {
		t.Errorf("Seek error = %v, want ErrNoLyrics", err)
	}
	if err := s.Skip(10); !errors.Is(err, ErrNoLyrics) {
		t.Errorf("Skip error = %v, want ErrNoLyrics", err)
	}
	if s.Tick(time.Second) {
		t.Error("Tick moved an empty session")
	}
	if f := s.Current(); f.Line != nil || f.Items != nil {
		t.Errorf("Current = %+v, want empty frame", f)
	}
}

func TestSeekClamps(t *testing.T) {
	s := NewSession(tokenizer.Default())
	s.Load(testLyrics())

	s.Seek(-50)
	if s.Position() != 0 {
		t.Errorf("Position = %d after negative seek, want 0", s.Position())
	}
	s.Seek(1_000_000)
	if s.Position() != 7000 {
		t.Errorf("Position = %d, want duration 7000", s.Position())
	}
	s.Skip(-2500)
	if s.Position() != 4500 {
		t.Errorf("Position = %d after skip, want 4500", s.Position())
	}
}

func TestTickOnlyWhilePlaying(t *testing.T) {
	s := NewSession(tokenizer.Default())
	s.Load(testLyrics())

	if s.Tick(500 * time.Millisecond) {
		t.Error("Tick moved a paused session")
	}
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !s.Tick(1500*time.Millisecond) || s.Position() != 1500 {
		t.Errorf("Position = %d, want 1500", s.Position())
	}

	f := s.Current()
	if f.Line == nil || f.Line.Text != "I Like It Like It" {
		t.Fatalf("Current line = %+v", f.Line)
	}
	if len(f.Items) == 0 || f.Items[0].Text != "I" {
		t.Errorf("Current items = %+v", f.Items)
	}

	s.Tick(time.Hour)
	if s.Playing() {
		t.Error("still playing past the end")
	}
	if s.Position() != 7000 {
		t.Errorf("Position = %d, want 7000", s.Position())
	}
}

func TestCurrentHoldsLineThroughGap(t *testing.T) {
	l := &lyrics.Lyrics{Lines: []lyrics.Line{
		{StartTimeMs: 0, EndTimeMs: ptr(1000), Text: "He"},
		{StartTimeMs: 2000, EndTimeMs: ptr(3000), Text: "Na"},
	}}
	s := NewSession(tokenizer.Default())
	s.Load(l)
	s.Play()

	s.Tick(500 * time.Millisecond)
	if f := s.Current(); f.Line == nil || f.Line.Text != "He" {
		t.Fatalf("Current at 500 = %+v", f.Line)
	}
	s.Tick(time.Second)
	if f := s.Current(); f.Line == nil || f.Line.Text != "He" {
		t.Errorf("Current in gap = %+v, want held He", f.Line)
	}

	// a jump into the gap shows nothing
	s.Seek(1500)
	if f := s.Current(); f.Line != nil {
		t.Errorf("Current after seek into gap = %+v, want none", f.Line)
	}

	if f := s.At(1500); f.Line != nil {
		t.Errorf("At(1500) = %+v, want none", f.Line)
	}
}

func TestAtIsDeterministic(t *testing.T) {
	s := NewSession(tokenizer.Default())
	s.Load(testLyrics())

	a := s.At(3500)
	b := s.At(3500)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("At(3500) differs between calls")
	}
	if a.Line == nil || a.Line.Text != "Ae Chammak Challo" {
		t.Errorf("At(3500).Line = %+v", a.Line)
	}
	if s.Position() != 0 {
		t.Errorf("At moved the session to %d", s.Position())
	}
}

func ptr(v int64) *int64 { return &v }
