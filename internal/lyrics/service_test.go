package lyrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	name    string
	prefix  string
	lyrics  *Lyrics
	err     error
	matches []Match
	fetches int
}

func (f *fakeSource) Name() string            { return f.name }
func (f *fakeSource) Handles(ref string) bool { return strings.HasPrefix(ref, f.prefix) }

func (f *fakeSource) Fetch(ctx context.Context, ref string) (*Lyrics, error) {
	f.fetches++
	return f.lyrics, f.err
}

type searchingSource struct {
	fakeSource
}

func (s *searchingSource) Search(ctx context.Context, artist, title string) ([]Match, error) {
	return s.matches, s.err
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttl  time.Duration
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttl = ttl
	return nil
}

func TestServiceDispatch(t *testing.T) {
	web := &fakeSource{name: "page", prefix: "http", lyrics: FromPlain("web", DefaultLineMs)}
	ids := &fakeSource{name: "ids", prefix: "", lyrics: FromPlain("id", DefaultLineMs)}
	svc := NewService(web, ids)

	res, err := svc.Fetch(context.Background(), "https://example.com/song")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Source != "page" || res.Lyrics.Lines[0].Text != "web" {
		t.Errorf("Fetch(url) = %+v", res)
	}

	res, err = svc.Fetch(context.Background(), "42")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Source != "ids" {
		t.Errorf("Fetch(42).Source = %q, want ids", res.Source)
	}
}

func TestServiceUnsupported(t *testing.T) {
	svc := NewService(&fakeSource{name: "page", prefix: "http"})
	_, err := svc.Fetch(context.Background(), "42")
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("Fetch error = %v, want ErrUnsupportedSource", err)
	}

	_, err = svc.Search(context.Background(), "a", "b")
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("Search error = %v, want ErrUnsupportedSource", err)
	}
}

func TestServiceFetchError(t *testing.T) {
	svc := NewService(&fakeSource{name: "ids", err: ErrNotFound})
	if _, err := svc.Fetch(context.Background(), "7"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch error = %v, want ErrNotFound", err)
	}
}

func TestServiceCache(t *testing.T) {
	src := &fakeSource{name: "ids", lyrics: ParseLRC("[00:01.00]He\n", DefaultLineMs)}
	cache := &memCache{data: map[string][]byte{}}
	svc := NewService(src).WithCache(cache, time.Hour)

	first, err := svc.Fetch(context.Background(), "1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if first.Cached {
		t.Error("first fetch reported cached")
	}

	second, err := svc.Fetch(context.Background(), "1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !second.Cached {
		t.Error("second fetch not served from cache")
	}
	if src.fetches != 1 {
		t.Errorf("source fetched %d times, want 1", src.fetches)
	}
	if cache.ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", cache.ttl)
	}
	if got := second.Lyrics.Lines[0]; got.Text != "He" || got.StartTimeMs != 1000 {
		t.Errorf("cached line = %+v", got)
	}
	if _, ok := cache.data["lyrics:ids:1"]; !ok {
		t.Errorf("cache keys = %v", cache.data)
	}
}

func TestServiceSearch(t *testing.T) {
	src := &searchingSource{fakeSource{name: "lrclib", matches: []Match{{ID: "1", Title: "Chammak Challo"}}}}
	svc := NewService(&fakeSource{name: "page", prefix: "http"}, src)

	matches, err := svc.Search(context.Background(), "Akon", "Chammak Challo")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "1" {
		t.Errorf("Search = %+v", matches)
	}

	src.matches = nil
	src.err = errors.New("down")
	if _, err := svc.Search(context.Background(), "a", "b"); err == nil {
		t.Error("Search with failing source returned nil error")
	}
}
