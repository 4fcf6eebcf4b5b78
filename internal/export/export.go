package export

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/player"
)

const (
	DefaultFPS      = 30
	DefaultFilename = "lyrics"
	ManifestName    = "manifest.json.xz"

	// MaxFrames bounds one export: an hour at 60 fps.
	MaxFrames = 60 * 60 * 60
)

var ErrInvalidOptions = errors.New("invalid export options")

type Options struct {
	Filename string
	// DurationSec of zero or less exports the whole lyrics.
	DurationSec float64
	FPS         int
}

type FrameRecord struct {
	Index  int    `json:"index"`
	TimeMs int64  `json:"time_ms"`
	Line   string `json:"line,omitempty"`
	Digest string `json:"digest"`
}

type Manifest struct {
	ID         string        `json:"id"`
	Filename   string        `json:"filename"`
	FPS        int           `json:"fps"`
	DurationMs int64         `json:"duration_ms"`
	CreatedAt  time.Time     `json:"created_at"`
	Frames     []FrameRecord `json:"frames"`
}

// Artifact is a finished export held in memory. Snapshots are stored once
// per distinct digest.
type Artifact struct {
	Manifest Manifest
	blobs    map[string][]byte
}

// Name is the artifact's directory name.
func (a *Artifact) Name() string {
	return a.Manifest.Filename + "-" + a.Manifest.ID
}

// Blob returns the snapshot stored under digest.
func (a *Artifact) Blob(digest string) ([]byte, bool) {
	b, ok := a.blobs[digest]
	return b, ok
}

// Digests returns the distinct snapshot digests in sorted order.
func (a *Artifact) Digests() []string {
	out := make([]string, 0, len(a.blobs))
	for d := range a.blobs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

type Exporter struct {
	tok player.LineTokenizer
	now func() time.Time
}

func NewExporter(tok player.LineTokenizer) *Exporter {
	return &Exporter{tok: tok, now: time.Now}
}

// FrameCount returns ceil(durationMs*fps/1000), or 0 for empty input.
func FrameCount(durationMs int64, fps int) float64 {
	if durationMs <= 0 || fps <= 0 {
		return 0
	}
	return math.Ceil(float64(durationMs) * float64(fps) / 1000)
}

// FrameTimes returns the capture times for a clip of durationMs at fps:
// frame i is at i*1000/fps ms. It returns nil past MaxFrames.
func FrameTimes(durationMs int64, fps int) []int64 {
	n := FrameCount(durationMs, fps)
	if n == 0 || n > MaxFrames {
		return nil
	}
	times := make([]int64, int(n))
	for i := range times {
		times[i] = int64(i) * 1000 / int64(fps)
	}
	return times
}

// Digest is the hex blake3 hash of a snapshot.
func Digest(snapshot []byte) string {
	sum := blake3.Sum256(snapshot)
	return hex.EncodeToString(sum[:])
}

// Export captures every frame of l according to opts.
func (e *Exporter) Export(ctx context.Context, l *lyrics.Lyrics, opts Options) (*Artifact, error) {
	if l == nil {
		return nil, player.ErrNoLyrics
	}
	if opts.FPS == 0 {
		opts.FPS = DefaultFPS
	}
	if opts.FPS < 0 {
		return nil, fmt.Errorf("%w: fps %d", ErrInvalidOptions, opts.FPS)
	}
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}
	if math.IsNaN(opts.DurationSec) || opts.DurationSec > MaxFrames {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidOptions, opts.DurationSec)
	}
	durationMs := int64(math.Round(opts.DurationSec * 1000))
	if durationMs <= 0 {
		durationMs = l.DurationMs()
	}
	if n := FrameCount(durationMs, opts.FPS); n > MaxFrames {
		return nil, fmt.Errorf("%w: %.0f frames, limit %d", ErrInvalidOptions, n, MaxFrames)
	}

	art := &Artifact{
		Manifest: Manifest{
			ID:         uuid.New().String(),
			Filename:   opts.Filename,
			FPS:        opts.FPS,
			DurationMs: durationMs,
			CreatedAt:  e.now().UTC(),
		},
		blobs: make(map[string][]byte),
	}

	for i, ms := range FrameTimes(durationMs, opts.FPS) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame := player.FrameAt(l, e.tok, ms)
		snap, err := Snapshot(frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		digest := Digest(snap)
		if _, ok := art.blobs[digest]; !ok {
			art.blobs[digest] = snap
		}
		rec := FrameRecord{Index: i, TimeMs: ms, Digest: digest}
		if frame.Line != nil {
			rec.Line = frame.Line.Text
		}
		art.Manifest.Frames = append(art.Manifest.Frames, rec)
	}

	logger.Debug(fmt.Sprintf("exported %d frames (%d distinct) for %s",
		len(art.Manifest.Frames), len(art.blobs), art.Name()))
	return art, nil
}

// WriteDir writes the artifact under dir as <name>/frames/<digest>.html plus
// an xz-compressed JSON manifest, and returns the artifact path.
func (a *Artifact) WriteDir(dir string) (string, error) {
	root := filepath.Join(dir, a.Name())
	framesDir := filepath.Join(root, "frames")
	if err := os.MkdirAll(framesDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	for digest, snap := range a.blobs {
		path := filepath.Join(framesDir, digest+".html")
		if err := os.WriteFile(path, snap, 0644); err != nil {
			return "", fmt.Errorf("failed to write frame %s: %w", digest, err)
		}
	}

	f, err := os.Create(filepath.Join(root, ManifestName))
	if err != nil {
		return "", fmt.Errorf("failed to create manifest: %w", err)
	}
	defer f.Close()
	if err := WriteManifest(f, &a.Manifest); err != nil {
		return "", err
	}
	return root, f.Close()
}

// WriteManifest writes m as xz-compressed JSON.
func WriteManifest(w io.Writer, m *Manifest) error {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	enc := json.NewEncoder(xw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		xw.Close()
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("failed to close xz writer: %w", err)
	}
	return nil
}

// ReadManifest reads a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	var m Manifest
	if err := json.NewDecoder(xr).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}
