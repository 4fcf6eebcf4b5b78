package state

import (
	"testing"
	"time"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

func newManager(limit int) *StateManager {
	sm := NewStateManager(tokenizer.Default(), limit)
	clock := time.Unix(0, 0)
	sm.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return sm
}

func TestGetCreatesOnce(t *testing.T) {
	sm := newManager(0)
	a := sm.Get(1)
	b := sm.Get(1)
	if a != b || a.Session == nil {
		t.Error("Get should return the same state with a session")
	}
	if sm.Count() != 1 {
		t.Errorf("Count = %d, want 1", sm.Count())
	}
}

func TestLoad(t *testing.T) {
	sm := newManager(0)
	res := &lyrics.Result{
		Ref:    "42",
		Source: "lrclib",
		Lyrics: lyrics.ParseLRC("[00:00.00]He\n", 4000),
	}
	cs := sm.Load(7, res)
	if cs.Ref != "42" || cs.Source != "lrclib" {
		t.Errorf("state = %+v", cs)
	}
	if f := cs.Session.At(100); f.Line == nil || f.Line.Text != "He" {
		t.Errorf("session frame = %+v", f)
	}
}

func TestMatches(t *testing.T) {
	sm := newManager(0)
	sm.SetMatches(3, []lyrics.Match{{ID: "10"}, {ID: "20"}})

	if m, ok := sm.Match(3, 2); !ok || m.ID != "20" {
		t.Errorf("Match(3, 2) = %+v, %v", m, ok)
	}
	for _, i := range []int{0, 3} {
		if _, ok := sm.Match(3, i); ok {
			t.Errorf("Match(3, %d) should miss", i)
		}
	}
	if _, ok := sm.Match(4, 1); ok {
		t.Error("Match on unknown chat should miss")
	}
}

func TestLimitEvictsLeastRecentlyUsed(t *testing.T) {
	sm := newManager(2)
	sm.Get(1)
	sm.Get(2)
	sm.Get(1)
	sm.Get(3)

	if sm.Count() != 2 {
		t.Fatalf("Count = %d, want 2", sm.Count())
	}
	all := sm.All()
	if all[0].ChatID != 3 || all[1].ChatID != 1 {
		t.Errorf("chats = %d, %d; want 3, 1", all[0].ChatID, all[1].ChatID)
	}

	sm.Remove(3)
	if sm.Count() != 1 {
		t.Errorf("Count after Remove = %d, want 1", sm.Count())
	}
}
