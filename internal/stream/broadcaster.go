package stream

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sukalov/periodiclyrics/internal/player"
)

// listenerBuffer is how many frames a listener may fall behind before frames
// are dropped for it.
const listenerBuffer = 64

// Broadcaster fans out rendered frames from one session to N listeners.
// New listeners start with the most recently published frame.
type Broadcaster struct {
	mu        sync.RWMutex
	listeners map[*Listener]struct{}
	last      *player.Frame
}

// Listener receives frames from the broadcaster.
type Listener struct {
	ID   string
	C    chan player.Frame
	done chan struct{}
}

// Done is closed when the listener is unsubscribed.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		listeners: make(map[*Listener]struct{}),
	}
}

// Subscribe registers a new listener. If a frame was already published the
// listener receives it first.
func (b *Broadcaster) Subscribe() *Listener {
	l := &Listener{
		ID:   uuid.New().String(),
		C:    make(chan player.Frame, listenerBuffer),
		done: make(chan struct{}),
	}
	b.mu.Lock()
	if b.last != nil {
		l.C <- *b.last
	}
	b.listeners[l] = struct{}{}
	b.mu.Unlock()
	return l
}

// Last returns the most recently published frame.
func (b *Broadcaster) Last() (player.Frame, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.last == nil {
		return player.Frame{}, false
	}
	return *b.last, true
}

// Unsubscribe removes a listener and signals it to stop. Removing a listener
// twice is a no-op.
func (b *Broadcaster) Unsubscribe(l *Listener) {
	b.mu.Lock()
	_, ok := b.listeners[l]
	delete(b.listeners, l)
	b.mu.Unlock()
	if ok {
		close(l.done)
	}
}

func (b *Broadcaster) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Publish sends f to every listener. Slow listeners miss the frame rather
// than blocking the others.
func (b *Broadcaster) Publish(f player.Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = &f
	for l := range b.listeners {
		select {
		case l.C <- f:
		default:
		}
	}
}

// Run publishes frames from source until it closes or ctx is done.
func (b *Broadcaster) Run(ctx context.Context, source <-chan player.Frame) {
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-source:
			if !ok {
				return
			}
			b.Publish(f)
		}
	}
}

// Drive ticks s every interval and emits its current frame whenever the
// displayed line changes. Lines are told apart by start time, so a repeated
// line is emitted again. The returned channel closes when ctx is done.
func Drive(ctx context.Context, s *player.Session, interval time.Duration) <-chan player.Frame {
	out := make(chan player.Frame, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := time.Now()
		var shown lineKey
		first := true
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.Tick(now.Sub(last))
				last = now

				f := s.Current()
				key := keyOf(f)
				if !first && key == shown {
					continue
				}
				first = false
				shown = key
				select {
				case out <- f:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

type lineKey struct {
	shown   bool
	startMs int64
	text    string
}

func keyOf(f player.Frame) lineKey {
	if f.Line == nil {
		return lineKey{}
	}
	return lineKey{shown: true, startMs: f.Line.StartTimeMs, text: f.Line.Text}
}
