package state

import (
	"sort"
	"sync"
	"time"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

// DefaultLimit is how many chats keep a session before the least recently
// used one is dropped.
const DefaultLimit = 1000

// ChatState is what the bot remembers about one chat.
type ChatState struct {
	ChatID    int64
	Session   *player.Session
	Ref       string
	Source    string
	Matches   []lyrics.Match
	UpdatedAt time.Time
}

type StateManager struct {
	mu    sync.Mutex
	tok   *tokenizer.Tokenizer
	chats map[int64]*ChatState
	limit int
	now   func() time.Time
}

func NewStateManager(tok *tokenizer.Tokenizer, limit int) *StateManager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &StateManager{
		tok:   tok,
		chats: make(map[int64]*ChatState),
		limit: limit,
		now:   time.Now,
	}
}

// Get returns the chat's state, creating it with an empty session on first
// use.
func (sm *StateManager) Get(chatID int64) *ChatState {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cs, ok := sm.chats[chatID]
	if !ok {
		sm.evictLocked()
		cs = &ChatState{ChatID: chatID, Session: player.NewSession(sm.tok)}
		sm.chats[chatID] = cs
	}
	cs.UpdatedAt = sm.now()
	return cs
}

// Load puts lyrics from res into the chat's session.
func (sm *StateManager) Load(chatID int64, res *lyrics.Result) *ChatState {
	cs := sm.Get(chatID)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	cs.Ref = res.Ref
	cs.Source = res.Source
	cs.Session.Load(res.Lyrics)
	return cs
}

// SetMatches remembers the chat's last search results.
func (sm *StateManager) SetMatches(chatID int64, matches []lyrics.Match) {
	cs := sm.Get(chatID)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	cs.Matches = matches
}

// Match returns the i-th (1-based) result of the chat's last search.
func (sm *StateManager) Match(chatID int64, i int) (lyrics.Match, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	cs, ok := sm.chats[chatID]
	if !ok || i < 1 || i > len(cs.Matches) {
		return lyrics.Match{}, false
	}
	return cs.Matches[i-1], true
}

func (sm *StateManager) Remove(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.chats, chatID)
}

func (sm *StateManager) Count() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.chats)
}

// All returns the chat states ordered by most recent use.
func (sm *StateManager) All() []*ChatState {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	out := make([]*ChatState, 0, len(sm.chats))
	for _, cs := range sm.chats {
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

func (sm *StateManager) evictLocked() {
	for len(sm.chats) >= sm.limit {
		var oldest *ChatState
		for _, cs := range sm.chats {
			if oldest == nil || cs.UpdatedAt.Before(oldest.UpdatedAt) {
				oldest = cs
			}
		}
		delete(sm.chats, oldest.ChatID)
	}
}
