package page

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (compatible; PeriodicLyrics/1.0; +https://github.com/sukalov/periodiclyrics)"

	// MaxPageBytes caps how much of a page is parsed.
	MaxPageBytes = 4 << 20
)

// Client downloads HTML pages and parses them into goquery documents.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// ClientOption configures a Client.
type ClientOption func(*Client)

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

func WithMaxBytes(n int64) ClientOption {
	return func(c *Client) { c.maxBytes = n }
}

// NewClient creates a page client. The transport asks for gzip and
// decodes it transparently.
func NewClient(timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		userAgent: DefaultUserAgent,
		maxBytes:  MaxPageBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchDocument downloads url and parses at most maxBytes of its body.
// A 404 or 410 maps to lyrics.ErrNotFound.
func (c *Client) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("page request failed\nURL: %s\nError: %v", url, err))
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("%s: %w", url, lyrics.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		logger.Error(fmt.Sprintf("page HTTP error\nURL: %s\nStatus: %d", url, resp.StatusCode))
		return nil, fmt.Errorf("page HTTP error %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}
	logger.Debug(fmt.Sprintf("page %s parsed in %s", url, time.Since(start).Round(time.Millisecond)))
	return doc, nil
}
