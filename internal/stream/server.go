package stream

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/utils"
)

// NewServer returns the live view API over session:
//
//	GET  /ws          websocket stream of frames
//	GET  /api/frame   current frame, or the frame at ?t=mm:ss
//	GET  /api/lyrics  loaded lyrics
//	POST /api/play, /api/pause
//	POST /api/seek?t=mm:ss
func NewServer(session *player.Session, b *Broadcaster) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /ws", Handler(b))

	mux.HandleFunc("GET /api/frame", func(w http.ResponseWriter, r *http.Request) {
		if t := r.URL.Query().Get("t"); t != "" {
			ms, err := utils.ParseTimestamp(t)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeJSON(w, session.At(ms))
			return
		}
		writeJSON(w, session.Current())
	})

	mux.HandleFunc("GET /api/lyrics", func(w http.ResponseWriter, r *http.Request) {
		l := session.Lyrics()
		if l == nil {
			http.Error(w, player.ErrNoLyrics.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, l)
	})

	mux.HandleFunc("POST /api/play", func(w http.ResponseWriter, r *http.Request) {
		if err := session.Play(); err != nil {
			writeError(w, err)
			return
		}
		writeStatus(w, session)
	})

	mux.HandleFunc("POST /api/pause", func(w http.ResponseWriter, r *http.Request) {
		session.Pause()
		writeStatus(w, session)
	})

	mux.HandleFunc("POST /api/seek", func(w http.ResponseWriter, r *http.Request) {
		ms, err := utils.ParseTimestamp(r.URL.Query().Get("t"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := session.Seek(ms); err != nil {
			writeError(w, err)
			return
		}
		b.Publish(session.Current())
		writeStatus(w, session)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, s *player.Session) {
	writeJSON(w, map[string]any{
		"ok":       true,
		"playing":  s.Playing(),
		"position": s.Position(),
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, player.ErrNoLyrics) {
		status = http.StatusConflict
	}
	http.Error(w, err.Error(), status)
}
