// Command periodiclyrics spells lyrics with periodic table tiles in the
// terminal, exports frame captures and serves a live view.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sukalov/periodiclyrics/internal/app"
	"github.com/sukalov/periodiclyrics/internal/config"
	"github.com/sukalov/periodiclyrics/internal/db"
	"github.com/sukalov/periodiclyrics/internal/export"
	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/periodic"
	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/render"
	"github.com/sukalov/periodiclyrics/internal/stream"
	"github.com/sukalov/periodiclyrics/internal/utils"
)

var CLI struct {
	Debug bool `help:"Log debug messages"`

	Render RenderCmd `cmd:"" help:"Spell text with element tiles"`
	Lyrics LyricsCmd `cmd:"" help:"Fetch lyrics and spell every line, or the line at a time"`
	Export ExportCmd `cmd:"" help:"Capture frames of lyrics into an export directory"`
	Serve  ServeCmd  `cmd:"" help:"Play lyrics and stream frames over a websocket"`
	Seed   SeedCmd   `cmd:"" help:"Write the built-in tables to a database"`
}

type RenderCmd struct {
	Text   []string `arg:"" help:"Text to spell"`
	Plain  bool     `help:"Print [Sym] text instead of colored tiles"`
	Legend bool     `help:"List the elements used"`
}

func (c *RenderCmd) Run(ctx context.Context, cfg config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	items := a.Tokenizer.TokenizeLine(strings.Join(c.Text, " "))
	if c.Plain {
		fmt.Println(render.Text(items))
	} else {
		fmt.Println(render.Terminal(items))
	}
	if c.Legend {
		fmt.Println()
		fmt.Println(render.Legend(items))
	}
	return nil
}

type LyricsCmd struct {
	Ref   string `arg:"" help:"lrclib id, page URL or .lrc/.txt file"`
	At    string `help:"Only show the line at this time (mm:ss)"`
	Plain bool   `help:"Print [Sym] text instead of colored tiles"`
}

func (c *LyricsCmd) Run(ctx context.Context, cfg config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Lyrics.Fetch(ctx, c.Ref)
	if err != nil {
		return err
	}

	draw := render.Terminal
	if c.Plain {
		draw = render.Text
	}

	if c.At != "" {
		ms, err := utils.ParseTimestamp(c.At)
		if err != nil {
			return err
		}
		f := player.FrameAt(res.Lyrics, a.Tokenizer, ms)
		if f.Line == nil {
			fmt.Printf("[%s] nothing is sung here\n", utils.FormatTimestamp(ms))
			return nil
		}
		fmt.Printf("[%s] %s\n%s\n", utils.FormatTimestamp(f.Line.StartTimeMs), f.Line.Text, draw(f.Items))
		return nil
	}

	fmt.Printf("%d lines (%s) from %s\n\n", len(res.Lyrics.Lines), res.Lyrics.SyncType, res.Source)
	for _, line := range res.Lyrics.Lines {
		fmt.Printf("[%s] %s\n%s\n\n", utils.FormatTimestamp(line.StartTimeMs), line.Text, draw(a.Tokenizer.TokenizeLine(line.Text)))
	}
	return nil
}

type ExportCmd struct {
	Ref      string  `arg:"" help:"lrclib id, page URL or .lrc/.txt file"`
	Name     string  `help:"Artifact file name" default:"lyrics"`
	Duration float64 `help:"Seconds to capture, the whole lyrics when zero"`
	FPS      int     `help:"Frames per second, EXPORT_FPS when zero"`
	Out      string  `help:"Export directory, EXPORT_DIR when empty" type:"path"`
}

func (c *ExportCmd) Run(ctx context.Context, cfg config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Lyrics.Fetch(ctx, c.Ref)
	if err != nil {
		return err
	}

	opts := export.Options{Filename: c.Name, DurationSec: c.Duration, FPS: c.FPS}
	if opts.FPS == 0 {
		opts.FPS = cfg.ExportFPS
	}
	out := c.Out
	if out == "" {
		out = cfg.ExportDir
	}

	art, err := export.NewExporter(a.Tokenizer).Export(ctx, res.Lyrics, opts)
	if err != nil {
		return err
	}
	path, err := art.WriteDir(out)
	if err != nil {
		return err
	}

	logger.Success(fmt.Sprintf("exported %d frames (%d distinct) to %s",
		len(art.Manifest.Frames), len(art.Digests()), path))
	return nil
}

type ServeCmd struct {
	Ref  string        `arg:"" help:"lrclib id, page URL or .lrc/.txt file"`
	Addr string        `help:"Listen address, HTTP_ADDR when empty"`
	Tick time.Duration `help:"Playback tick" default:"50ms"`
}

func (c *ServeCmd) Run(ctx context.Context, cfg config.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Lyrics.Fetch(ctx, c.Ref)
	if err != nil {
		return err
	}

	session := player.NewSession(a.Tokenizer)
	session.Load(res.Lyrics)
	if err := session.Play(); err != nil {
		return err
	}

	b := stream.NewBroadcaster()
	go b.Run(ctx, stream.Drive(ctx, session, c.Tick))

	addr := c.Addr
	if addr == "" {
		addr = cfg.HTTPAddr
	}
	server := &http.Server{Addr: addr, Handler: stream.NewServer(session, b)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info(fmt.Sprintf("serving %d lines from %s on %s", len(res.Lyrics.Lines), res.Source, addr))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

type SeedCmd struct {
	DB    string `help:"Database URL, TURSO_DATABASE_URL when empty"`
	Token string `help:"Auth token, TURSO_AUTH_TOKEN when empty"`
}

func (c *SeedCmd) Run(ctx context.Context, cfg config.Config) error {
	url, token := c.DB, c.Token
	if url == "" {
		url = cfg.DatabaseURL
	}
	if token == "" {
		token = cfg.DatabaseAuthToken
	}
	if url == "" {
		return errors.New("no database url given")
	}

	database, err := db.Open(ctx, url, token)
	if err != nil {
		return err
	}
	defer database.Close()

	elements, emoji, symbols := periodic.Builtin()
	return logger.LogWithErr(
		fmt.Sprintf("seeding %d elements, %d emoji words, %d symbols", len(elements), len(emoji), len(symbols)),
		db.Seed(ctx, database, elements, emoji, symbols),
	)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kctx := kong.Parse(&CLI,
		kong.Name("periodiclyrics"),
		kong.Description("Spell song lyrics with periodic table elements"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	logger.SetDebug(CLI.Debug)

	kctx.Bind(config.Load())
	err := kctx.Run()
	if errors.Is(err, lyrics.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "no lyrics found")
		os.Exit(1)
	}
	kctx.FatalIfErrorf(err)
}
