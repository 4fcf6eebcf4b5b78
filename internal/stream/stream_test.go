package stream

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

func TestBroadcasterFanOut(t *testing.T) {
	b := NewBroadcaster()
	l1 := b.Subscribe()
	l2 := b.Subscribe()
	if l1.ID == l2.ID {
		t.Error("listener ids collide")
	}
	if b.ListenerCount() != 2 {
		t.Fatalf("ListenerCount = %d, want 2", b.ListenerCount())
	}

	b.Publish(player.Frame{TimeMs: 42})
	for _, l := range []*Listener{l1, l2} {
		select {
		case f := <-l.C:
			if f.TimeMs != 42 {
				t.Errorf("frame time = %d, want 42", f.TimeMs)
			}
		default:
			t.Error("listener got no frame")
		}
	}

	b.Unsubscribe(l1)
	b.Unsubscribe(l1)
	select {
	case <-l1.Done():
	default:
		t.Error("Done not closed after Unsubscribe")
	}
	if b.ListenerCount() != 1 {
		t.Errorf("ListenerCount = %d, want 1", b.ListenerCount())
	}
}

func TestSlowListenerDropsFrames(t *testing.T) {
	b := NewBroadcaster()
	l := b.Subscribe()
	for i := 0; i < listenerBuffer+10; i++ {
		b.Publish(player.Frame{TimeMs: int64(i)})
	}
	if len(l.C) != listenerBuffer {
		t.Errorf("buffered frames = %d, want %d", len(l.C), listenerBuffer)
	}
}

func TestRunStopsWhenSourceCloses(t *testing.T) {
	b := NewBroadcaster()
	l := b.Subscribe()
	src := make(chan player.Frame, 1)
	src <- player.Frame{TimeMs: 7}
	close(src)

	done := make(chan struct{})
	go func() {
		b.Run(context.Background(), src)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	if f := <-l.C; f.TimeMs != 7 {
		t.Errorf("frame time = %d, want 7", f.TimeMs)
	}
}

func TestDriveEmitsLineChanges(t *testing.T) {
	s := player.NewSession(tokenizer.Default())
	s.Load(lyrics.ParseLRC("[00:00.00]He\n[00:00.50]Na\n", 1000))
	s.Play()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := Drive(ctx, s, 10*time.Millisecond)

	var seen []string
	timeout := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case f := <-frames:
			if f.Line != nil {
				seen = append(seen, f.Line.Text)
			}
		case <-timeout:
			t.Fatalf("saw %v before timeout", seen)
		}
	}
	if seen[0] != "He" || seen[1] != "Na" {
		t.Errorf("lines = %v, want [He Na]", seen)
	}
}

func TestHandlerStreamsFrames(t *testing.T) {
	b := NewBroadcaster()
	srv := httptest.NewServer(Handler(b))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for b.ListenerCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("listener never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	line := lyrics.Line{StartTimeMs: 0, Text: "He"}
	b.Publish(player.Frame{TimeMs: 100, Line: &line, Items: tokenizer.TokenizeLine("He")})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var got struct {
		TimeMs int64 `json:"time_ms"`
		Line   struct {
			Text string `json:"text"`
		} `json:"line"`
		Items []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.TimeMs != 100 || got.Line.Text != "He" {
		t.Errorf("frame = %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Type != "element" || got.Items[0].Text != "He" {
		t.Errorf("items = %+v", got.Items)
	}

	conn.Close()
	for b.ListenerCount() != 0 {
		if time.Now().After(deadline.Add(2 * time.Second)) {
			t.Fatal("listener not removed after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSubscribeReplaysLastFrame(t *testing.T) {
	b := NewBroadcaster()
	if _, ok := b.Last(); ok {
		t.Error("Last reported a frame before any publish")
	}
	b.Publish(player.Frame{TimeMs: 1})
	b.Publish(player.Frame{TimeMs: 2})

	l := b.Subscribe()
	select {
	case f := <-l.C:
		if f.TimeMs != 2 {
			t.Errorf("replayed frame time = %d, want 2", f.TimeMs)
		}
	default:
		t.Fatal("late listener got no frame")
	}
	if len(l.C) != 0 {
		t.Errorf("late listener has %d extra frames", len(l.C))
	}
}

func TestHandlerLateJoinSeesCurrentLine(t *testing.T) {
	s := player.NewSession(tokenizer.Default())
	s.Load(lyrics.ParseLRC("[00:00.00]He\n[01:00.00]Na\n", 1000))
	s.Play()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := NewBroadcaster()
	go b.Run(ctx, Drive(ctx, s, 10*time.Millisecond))

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := b.Last(); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("nothing published")
		}
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)

	srv := httptest.NewServer(Handler(b))
	defer srv.Close()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var got struct {
		Line struct {
			Text string `json:"text"`
		} `json:"line"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Line.Text != "He" {
		t.Errorf("late join line = %q, want He", got.Line.Text)
	}
}

func TestDriveEmitsRepeatedLine(t *testing.T) {
	s := player.NewSession(tokenizer.Default())
	s.Load(lyrics.ParseLRC("[00:00.00]Na Na\n[00:00.30]Na Na\n", 1000))
	s.Play()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := Drive(ctx, s, 10*time.Millisecond)

	var starts []int64
	timeout := time.After(2 * time.Second)
	for len(starts) < 2 {
		select {
		case f := <-frames:
			if f.Line != nil {
				starts = append(starts, f.Line.StartTimeMs)
			}
		case <-timeout:
			t.Fatalf("saw starts %v before timeout", starts)
		}
	}
	if starts[0] != 0 || starts[1] != 300 {
		t.Errorf("line starts = %v, want [0 300]", starts)
	}
}
