package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/lyrics/sources/lrclib"
	"github.com/sukalov/periodiclyrics/internal/lyrics/sources/page"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Server
	HTTPAddr string

	// Lyric sources
	LRCLibURL       string
	LRCLibUserAgent string
	PageSelector    string
	HTTPTimeout     time.Duration

	// Lyrics cache, disabled when RedisURL is empty
	RedisURL      string
	RedisPassword string
	CacheTTL      time.Duration

	// Table database, built-in tables when DatabaseURL is empty
	DatabaseURL       string
	DatabaseAuthToken string

	// Export
	ExportFPS int
	ExportDir string

	// Bot
	BotToken     string
	LogChannelID string

	// Line timing
	PlainLineMs int64 // slot per line of plain lyrics
	LastLineMs  int64 // length of the last synced line
}

// Load reads .env if present, then configuration from environment variables
// with sane defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr: envStr("HTTP_ADDR", ":8080"),

		LRCLibURL:       envStr("LRCLIB_URL", lrclib.DefaultBaseURL),
		LRCLibUserAgent: envStr("LRCLIB_USER_AGENT", lrclib.DefaultUserAgent),
		PageSelector:    envStr("PAGE_SELECTOR", page.DefaultSelector),
		HTTPTimeout:     time.Duration(envInt("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,

		RedisURL:      envStr("REDIS_URL", ""),
		RedisPassword: envStr("REDIS_PASSWORD", ""),
		CacheTTL:      time.Duration(envInt("LYRICS_CACHE_TTL_MINUTES", 60)) * time.Minute,

		DatabaseURL:       envStr("TURSO_DATABASE_URL", ""),
		DatabaseAuthToken: envStr("TURSO_AUTH_TOKEN", ""),

		ExportFPS: envInt("EXPORT_FPS", 30),
		ExportDir: envStr("EXPORT_DIR", "exports"),

		BotToken:     envStr("BOT_TOKEN", ""),
		LogChannelID: envStr("LOG_CHANNEL_ID", ""),

		PlainLineMs: int64(envInt("PLAIN_LINE_MS", lyrics.DefaultLineMs)),
		LastLineMs:  int64(envInt("LAST_LINE_MS", lyrics.DefaultLineMs)),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
