package page

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
)

const songPage = `<html><body>
<h1>Chammak Challo</h1>
<pre class="song">
[Chorus]
<span class="chord">Am</span>
Ae Chammak Challo<br>Chhail Chhabili
 | | |

Mi Tujha King
</pre>
</body></html>`

func TestExtract(t *testing.T) {
	s := NewSource("pre.song", time.Second, lyrics.DefaultLineMs)
	got, err := s.Extract(songPage)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Ae Chammak Challo\nChhail Chhabili\nMi Tujha King"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestExtractMissingElement(t *testing.T) {
	s := NewSource("div.lyrics", time.Second, lyrics.DefaultLineMs)
	if _, err := s.Extract(songPage); !errors.Is(err, lyrics.ErrNotFound) {
		t.Errorf("Extract error = %v, want ErrNotFound", err)
	}
}

func TestFetchGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		zw.Write([]byte(songPage))
		zw.Close()
		w.Header().Set("Content-Encoding", "gzip")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	s := NewSource("", time.Second, 3000)
	got, err := s.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got.Lines) != 3 || got.Lines[2].Text != "Mi Tujha King" || got.Lines[2].StartTimeMs != 6000 {
		t.Errorf("Fetch = %+v", got)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewSource("", time.Second, lyrics.DefaultLineMs)
	if _, err := s.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch returned nil error for 403")
	}
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	s := NewSource("", time.Second, lyrics.DefaultLineMs)
	if _, err := s.Fetch(context.Background(), srv.URL); !errors.Is(err, lyrics.ErrNotFound) {
		t.Errorf("Fetch error = %v, want ErrNotFound", err)
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write([]byte(songPage))
	}))
	defer srv.Close()

	s := NewSource("pre", time.Second, lyrics.DefaultLineMs, WithUserAgent("tiles-test/1"))
	if _, err := s.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "tiles-test/1" {
		t.Errorf("User-Agent = %q, want tiles-test/1", got)
	}
}

func TestHandles(t *testing.T) {
	s := NewSource("", time.Second, lyrics.DefaultLineMs)
	for ref, want := range map[string]bool{"https://a.b/c": true, "http://a": true, "123": false, "ftp://x": false} {
		if got := s.Handles(ref); got != want {
			t.Errorf("Handles(%q) = %v, want %v", ref, got, want)
		}
	}
}
