package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Open connects to the table database. libsql://, http(s):// and ws(s)://
// URLs go to a remote libsql server with authToken; anything else is treated
// as a local sqlite path or DSN such as "file:tables.db" or ":memory:".
func Open(ctx context.Context, url, authToken string) (*sql.DB, error) {
	driver, dsn := dsnFor(url, authToken)

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}

	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(25)
	database.SetConnMaxLifetime(5 * time.Minute)
	if driver == "sqlite" {
		// each connection to :memory: is its own database
		database.SetMaxOpenConns(1)
		database.SetConnMaxLifetime(0)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return database, nil
}

func dsnFor(url, authToken string) (driver, dsn string) {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(url, scheme) {
			if authToken == "" {
				return "libsql", url
			}
			return "libsql", fmt.Sprintf("%s?authToken=%s", url, authToken)
		}
	}
	return "sqlite", url
}
