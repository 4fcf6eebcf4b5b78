package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sukalov/periodiclyrics/internal/logger"
)

// Match is one search hit from a lyrics source.
type Match struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album,omitempty"`
	Duration float64 `json:"duration"`
	Synced   bool    `json:"synced"`
	Source   string  `json:"source"`
}

// Source fetches lyrics for the references it handles (an id or a URL).
type Source interface {
	Name() string
	Handles(ref string) bool
	Fetch(ctx context.Context, ref string) (*Lyrics, error)
}

// Searcher is implemented by sources that can search by artist and title.
type Searcher interface {
	Search(ctx context.Context, artist, title string) ([]Match, error)
}

// Cache stores encoded lyrics. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Result is lyrics together with where they came from.
type Result struct {
	Ref       string    `json:"ref"`
	Source    string    `json:"source"`
	Lyrics    *Lyrics   `json:"lyrics"`
	FetchedAt time.Time `json:"fetched_at"`
	Cached    bool      `json:"-"`
}

// Service dispatches lyric requests to the first source that handles them.
type Service struct {
	sources []Source
	cache   Cache
	ttl     time.Duration
}

// NewService creates a service over sources, tried in order.
func NewService(sources ...Source) *Service {
	return &Service{sources: sources}
}

// WithCache enables caching of fetched lyrics for ttl.
func (s *Service) WithCache(cache Cache, ttl time.Duration) *Service {
	s.cache = cache
	s.ttl = ttl
	return s
}

// Fetch returns lyrics for ref from the cache or the matching source.
func (s *Service) Fetch(ctx context.Context, ref string) (*Result, error) {
	logger.Debug(fmt.Sprintf("Fetch called with ref: %s", ref))

	src := s.sourceFor(ref)
	if src == nil {
		logger.Error(fmt.Sprintf("Unsupported lyrics ref: %s", ref))
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, ref)
	}

	key := cacheKey(src.Name(), ref)
	if res, ok := s.fromCache(ctx, key); ok {
		return res, nil
	}

	lyr, err := src.Fetch(ctx, ref)
	if err != nil {
		logger.Error(fmt.Sprintf("%s fetch failed for ref: %s\nError: %v", src.Name(), ref, err))
		return nil, err
	}

	res := &Result{
		Ref:       ref,
		Source:    src.Name(),
		Lyrics:    lyr,
		FetchedAt: time.Now(),
	}
	s.toCache(ctx, key, res)

	logger.Debug(fmt.Sprintf("Fetch succeeded for ref: %s\nSource: %s\nLines: %d", ref, src.Name(), len(lyr.Lines)))
	return res, nil
}

// Search asks every searchable source and concatenates the hits.
func (s *Service) Search(ctx context.Context, artist, title string) ([]Match, error) {
	var (
		matches  []Match
		searched bool
		errs     []error
	)
	for _, src := range s.sources {
		searcher, ok := src.(Searcher)
		if !ok {
			continue
		}
		searched = true
		found, err := searcher.Search(ctx, artist, title)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		matches = append(matches, found...)
	}
	if !searched {
		return nil, fmt.Errorf("%w: no searchable source", ErrUnsupportedSource)
	}
	if len(matches) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return matches, nil
}

func (s *Service) sourceFor(ref string) Source {
	for _, src := range s.sources {
		if src.Handles(ref) {
			return src
		}
	}
	return nil
}

func cacheKey(source, ref string) string {
	return "lyrics:" + source + ":" + ref
}

func (s *Service) fromCache(ctx context.Context, key string) (*Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Error(fmt.Sprintf("lyrics cache get failed for %s: %v", key, err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		logger.Error(fmt.Sprintf("lyrics cache entry %s is corrupt: %v", key, err))
		return nil, false
	}
	res.Cached = true
	return &res, true
}

func (s *Service) toCache(ctx context.Context, key string, res *Result) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		logger.Error(fmt.Sprintf("lyrics cache set failed for %s: %v", key, err))
	}
}
