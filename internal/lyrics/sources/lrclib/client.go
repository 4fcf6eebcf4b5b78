package lrclib

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
)

const (
	DefaultBaseURL   = "https://lrclib.net"
	DefaultUserAgent = "PeriodicLyrics v1.0.0 (https://github.com/sukalov/periodiclyrics)"
)

// Record is a track as returned by the lrclib API.
type Record struct {
	ID           int64   `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// Client talks to the lrclib.net HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	lastLineMs int64
	plainMs    int64
}

// Option configures a Client.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLineTiming sets the slot for the last synced line and for each plain line.
func WithLineTiming(lastLineMs, plainMs int64) Option {
	return func(c *Client) {
		c.lastLineMs = lastLineMs
		c.plainMs = plainMs
	}
}

// NewClient creates an lrclib client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		lastLineMs: lyrics.DefaultLineMs,
		plainMs:    lyrics.DefaultLineMs,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string {
	return "lrclib"
}

// Handles accepts numeric lrclib track ids.
func (c *Client) Handles(ref string) bool {
	_, err := strconv.ParseInt(ref, 10, 64)
	return err == nil
}

// Search looks tracks up by artist and title. Either may be empty.
func (c *Client) Search(ctx context.Context, artist, title string) ([]lyrics.Match, error) {
	params := url.Values{}
	if title != "" {
		params.Set("track_name", title)
	}
	if artist != "" {
		params.Set("artist_name", artist)
	}

	var records []Record
	if err := c.getJSON(ctx, "/api/search?"+params.Encode(), &records); err != nil {
		return nil, err
	}

	matches := make([]lyrics.Match, 0, len(records))
	for _, r := range records {
		matches = append(matches, lyrics.Match{
			ID:       strconv.FormatInt(r.ID, 10),
			Title:    r.TrackName,
			Artist:   r.ArtistName,
			Album:    r.AlbumName,
			Duration: r.Duration,
			Synced:   r.SyncedLyrics != "",
			Source:   c.Name(),
		})
	}
	return matches, nil
}

// Get returns the raw record for a track id.
func (c *Client) Get(ctx context.Context, id string) (*Record, error) {
	var r Record
	if err := c.getJSON(ctx, "/api/get/"+url.PathEscape(id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Fetch returns lyrics for a track id, preferring synced lyrics.
func (c *Client) Fetch(ctx context.Context, id string) (*lyrics.Lyrics, error) {
	r, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.ToLyrics(r)
}

// ToLyrics converts a record, preferring synced lyrics over plain ones.
func (c *Client) ToLyrics(r *Record) (*lyrics.Lyrics, error) {
	switch {
	case r.SyncedLyrics != "":
		return lyrics.ParseLRC(r.SyncedLyrics, c.lastLineMs), nil
	case r.PlainLyrics != "":
		return lyrics.FromPlain(r.PlainLyrics, c.plainMs), nil
	default:
		return nil, fmt.Errorf("track %d: %w", r.ID, lyrics.ErrNotFound)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	fetchURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug(fmt.Sprintf("lrclib request: %s", fetchURL))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", fetchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", fetchURL, lyrics.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("lrclib HTTP error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode lrclib response: %w", err)
	}
	return nil
}
