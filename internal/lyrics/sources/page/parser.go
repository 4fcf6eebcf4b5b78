package page

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
)

// DefaultSelector finds the first preformatted block, where most chord and
// lyric sites keep the song text.
const DefaultSelector = "pre"

var (
	sectionMarkerRegex = regexp.MustCompile(`^\[[^\]]*\]:?$`)
	chordLineRegex     = regexp.MustCompile(`^[\s|]*$`)
)

// Source scrapes plain lyrics from an HTML element of a web page.
type Source struct {
	client   *Client
	selector string
	lineMs   int64
}

// NewSource creates a page source reading the element matched by selector.
func NewSource(selector string, timeout time.Duration, lineMs int64, opts ...ClientOption) *Source {
	if selector == "" {
		selector = DefaultSelector
	}
	return &Source{
		client:   NewClient(timeout, opts...),
		selector: selector,
		lineMs:   lineMs,
	}
}

func (s *Source) Name() string {
	return "page"
}

// Handles accepts http and https URLs.
func (s *Source) Handles(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Fetch downloads url and converts the selected element's text to lyrics.
func (s *Source) Fetch(ctx context.Context, url string) (*lyrics.Lyrics, error) {
	doc, err := s.client.FetchDocument(ctx, url)
	if err != nil {
		return nil, err
	}

	text, err := s.ExtractDocument(doc)
	if err != nil {
		logger.Error(fmt.Sprintf("page.Fetch: %v for URL %s", err, url))
		return nil, err
	}

	logger.Debug(fmt.Sprintf("page.Fetch: extracted %d chars from %s", len(text), url))
	return lyrics.FromPlain(text, s.lineMs), nil
}

// Extract returns the cleaned lyrics inside the selected element of html.
func (s *Source) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return s.ExtractDocument(doc)
}

// ExtractDocument is Extract for an already parsed page.
func (s *Source) ExtractDocument(doc *goquery.Document) (string, error) {
	selection := doc.Find(s.selector).First()
	if selection.Length() == 0 {
		return "", fmt.Errorf("element %q: %w", s.selector, lyrics.ErrNotFound)
	}

	// chord markup sits in its own elements on most sites
	selection.Find("script, style, .chord, [class*=chord]").Remove()
	selection.Find("br").ReplaceWithHtml("\n")

	text := cleanLines(selection.Text())
	if text == "" {
		return "", fmt.Errorf("element %q is empty: %w", s.selector, lyrics.ErrNotFound)
	}
	return text, nil
}

// cleanLines drops blank lines, section markers such as [Chorus] and lines
// made only of bar separators.
func cleanLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || sectionMarkerRegex.MatchString(line) || chordLineRegex.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
