package export

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

func sample() *lyrics.Lyrics {
	return lyrics.ParseLRC("[00:00.00]He Na\n[00:01.00]I Like It\n", 1000)
}

func TestFrameTimes(t *testing.T) {
	got := FrameTimes(1000, 4)
	want := []int64{0, 250, 500, 750}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FrameTimes(1000, 4) = %v, want %v", got, want)
	}
	if n := len(FrameTimes(1001, 30)); n != 31 {
		t.Errorf("len(FrameTimes(1001, 30)) = %d, want 31", n)
	}
	if got := FrameTimes(1000, 3); got[1] != 333 || got[2] != 666 {
		t.Errorf("FrameTimes(1000, 3) = %v", got)
	}
	if FrameTimes(0, 30) != nil || FrameTimes(1000, 0) != nil {
		t.Error("expected no frames for empty input")
	}
	if FrameTimes(1e12, 30) != nil {
		t.Error("expected no frames past MaxFrames")
	}
}

func TestExportDedupesSnapshots(t *testing.T) {
	ex := NewExporter(tokenizer.Default())
	art, err := ex.Export(context.Background(), sample(), Options{FPS: 10})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got := len(art.Manifest.Frames); got != 20 {
		t.Fatalf("frames = %d, want 20", got)
	}
	if got := len(art.Digests()); got != 2 {
		t.Errorf("distinct snapshots = %d, want 2", got)
	}
	first, last := art.Manifest.Frames[0], art.Manifest.Frames[19]
	if first.Line != "He Na" || last.Line != "I Like It" {
		t.Errorf("lines = %q, %q", first.Line, last.Line)
	}
	if last.TimeMs != 1900 {
		t.Errorf("last frame time = %d, want 1900", last.TimeMs)
	}
	snap, ok := art.Blob(first.Digest)
	if !ok || !strings.Contains(string(snap), "Helium") {
		t.Errorf("snapshot for first frame missing Helium tile")
	}
}

func TestExportIsReproducible(t *testing.T) {
	ex := NewExporter(tokenizer.Default())
	a, err := ex.Export(context.Background(), sample(), Options{FPS: 5, DurationSec: 2})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	b, err := ex.Export(context.Background(), sample(), Options{FPS: 5, DurationSec: 2})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if a.Manifest.ID == b.Manifest.ID {
		t.Error("artifact ids should differ between exports")
	}
	if !reflect.DeepEqual(a.Manifest.Frames, b.Manifest.Frames) {
		t.Error("frame digests differ between identical exports")
	}
}

func TestSnapshotIgnoresTime(t *testing.T) {
	l := sample()
	tok := tokenizer.Default()
	a, _ := Snapshot(player.FrameAt(l, tok, 100))
	b, _ := Snapshot(player.FrameAt(l, tok, 900))
	if !bytes.Equal(a, b) {
		t.Error("snapshots of the same line differ")
	}
}

func TestExportOptions(t *testing.T) {
	ex := NewExporter(tokenizer.Default())
	if _, err := ex.Export(context.Background(), nil, Options{}); !errors.Is(err, player.ErrNoLyrics) {
		t.Errorf("nil lyrics error = %v", err)
	}
	if _, err := ex.Export(context.Background(), sample(), Options{FPS: -1}); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("negative fps error = %v", err)
	}
	for _, opts := range []Options{
		{DurationSec: 1e9},
		{DurationSec: math.NaN()},
		{DurationSec: math.Inf(1)},
		{DurationSec: 3600, FPS: 1000},
	} {
		if _, err := ex.Export(context.Background(), sample(), opts); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("Export(%+v) error = %v, want ErrInvalidOptions", opts, err)
		}
	}

	art, err := ex.Export(context.Background(), sample(), Options{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if art.Manifest.FPS != DefaultFPS || art.Manifest.Filename != DefaultFilename {
		t.Errorf("defaults not applied: %+v", art.Manifest)
	}
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewExporter(tokenizer.Default()).Export(ctx, sample(), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestWriteDir(t *testing.T) {
	art, err := NewExporter(tokenizer.Default()).Export(context.Background(), sample(), Options{FPS: 2, Filename: "clip"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	root, err := art.WriteDir(t.TempDir())
	if err != nil {
		t.Fatalf("WriteDir: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(root), "clip-") {
		t.Errorf("artifact dir = %s", root)
	}
	for _, d := range art.Digests() {
		if _, err := os.Stat(filepath.Join(root, "frames", d+".html")); err != nil {
			t.Errorf("missing frame file: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(root, ManifestName))
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer f.Close()
	m, err := ReadManifest(f)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if m.ID != art.Manifest.ID || len(m.Frames) != len(art.Manifest.Frames) {
		t.Errorf("manifest round trip mismatch: %+v", m)
	}
}
