package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sukalov/periodiclyrics/internal/config"
	"github.com/sukalov/periodiclyrics/internal/db"
	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/lyrics/sources/file"
	"github.com/sukalov/periodiclyrics/internal/lyrics/sources/lrclib"
	"github.com/sukalov/periodiclyrics/internal/lyrics/sources/page"
	"github.com/sukalov/periodiclyrics/internal/periodic"
	"github.com/sukalov/periodiclyrics/internal/redis"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

// App holds the long-lived components shared by the binaries.
type App struct {
	Config    config.Config
	Tables    *periodic.Tables
	Tokenizer *tokenizer.Tokenizer
	Lyrics    *lyrics.Service

	database *sql.DB
	cache    *redis.Cache
}

// New wires the tables, tokenizer and lyrics service from cfg. The table
// database and redis cache are optional: without a database the built-in
// tables are used, and an unreachable cache is logged and skipped.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{Config: cfg, Tables: periodic.Default()}

	if cfg.DatabaseURL != "" {
		database, err := db.Open(ctx, cfg.DatabaseURL, cfg.DatabaseAuthToken)
		if err != nil {
			return nil, err
		}
		tables, err := db.LoadTables(ctx, database)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to load tables: %w", err)
		}
		a.database = database
		a.Tables = tables
		ne, nw, ns := tables.Len()
		logger.Info(fmt.Sprintf("loaded %d elements, %d emoji words, %d symbols from database", ne, nw, ns))
	}
	a.Tokenizer = tokenizer.New(a.Tables)

	a.Lyrics = lyrics.NewService(
		lrclib.NewClient(
			lrclib.WithBaseURL(cfg.LRCLibURL),
			lrclib.WithUserAgent(cfg.LRCLibUserAgent),
			lrclib.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
			lrclib.WithLineTiming(cfg.LastLineMs, cfg.PlainLineMs),
		),
		page.NewSource(cfg.PageSelector, cfg.HTTPTimeout, cfg.PlainLineMs),
		file.NewSource(cfg.LastLineMs, cfg.PlainLineMs),
	)

	if cfg.RedisURL != "" {
		cache, err := redis.NewCache(cfg.RedisURL, cfg.RedisPassword)
		if err == nil {
			if err = cache.Ping(ctx); err != nil {
				cache.Close()
			}
		}
		if err != nil {
			logger.Error(fmt.Sprintf("lyrics cache disabled: %v", err))
		} else {
			a.cache = cache
			a.Lyrics.WithCache(cache, cfg.CacheTTL)
		}
	}

	return a, nil
}

// Close releases the database and cache connections.
func (a *App) Close() {
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			logger.Error(fmt.Sprintf("error closing database: %v", err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(fmt.Sprintf("error closing cache: %v", err))
		}
	}
}
