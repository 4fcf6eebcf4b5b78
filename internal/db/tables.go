package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sukalov/periodiclyrics/internal/periodic"
)

var schema = []string{`CREATE TABLE IF NOT EXISTS elements (
	symbol TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	atomic_number INTEGER NOT NULL,
	atomic_weight TEXT NOT NULL,
	category TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS emoji_words (
	word TEXT PRIMARY KEY,
	emoji TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS symbols (
	key TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	name TEXT NOT NULL
)`,
}

// LoadTables reads the three lookup tables into a frozen periodic.Tables.
func LoadTables(ctx context.Context, database *sql.DB) (*periodic.Tables, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	elements, err := loadElements(ctx, database)
	if err != nil {
		return nil, err
	}
	emoji, err := loadEmoji(ctx, database)
	if err != nil {
		return nil, err
	}
	symbols, err := loadSymbols(ctx, database)
	if err != nil {
		return nil, err
	}
	return periodic.NewTables(elements, emoji, symbols), nil
}

func loadElements(ctx context.Context, database *sql.DB) ([]periodic.Element, error) {
	rows, err := database.QueryContext(ctx,
		"SELECT symbol, name, atomic_number, atomic_weight, category FROM elements")
	if err != nil {
		return nil, fmt.Errorf("failed to query elements: %w", err)
	}
	defer rows.Close()

	var out []periodic.Element
	for rows.Next() {
		var e periodic.Element
		var category string
		if err := rows.Scan(&e.Symbol, &e.Name, &e.AtomicNumber, &e.AtomicWeight, &category); err != nil {
			return nil, fmt.Errorf("error scanning element: %w", err)
		}
		e.Category = periodic.Category(category)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during elements iteration: %w", err)
	}
	return out, nil
}

func loadEmoji(ctx context.Context, database *sql.DB) ([]periodic.EmojiMapping, error) {
	rows, err := database.QueryContext(ctx, "SELECT word, emoji FROM emoji_words")
	if err != nil {
		return nil, fmt.Errorf("failed to query emoji words: %w", err)
	}
	defer rows.Close()

	var out []periodic.EmojiMapping
	for rows.Next() {
		var m periodic.EmojiMapping
		if err := rows.Scan(&m.Word, &m.Emoji); err != nil {
			return nil, fmt.Errorf("error scanning emoji word: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during emoji words iteration: %w", err)
	}
	return out, nil
}

func loadSymbols(ctx context.Context, database *sql.DB) ([]periodic.SymbolMapping, error) {
	rows, err := database.QueryContext(ctx, "SELECT key, symbol, name FROM symbols")
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var out []periodic.SymbolMapping
	for rows.Next() {
		var m periodic.SymbolMapping
		if err := rows.Scan(&m.Char, &m.Symbol, &m.Name); err != nil {
			return nil, fmt.Errorf("error scanning symbol: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during symbols iteration: %w", err)
	}
	return out, nil
}

// Seed creates the tables if needed and upserts the given records in one
// transaction.
func Seed(ctx context.Context, database *sql.DB, elements []periodic.Element, emoji []periodic.EmojiMapping, symbols []periodic.SymbolMapping) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	for _, e := range elements {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO elements (symbol, name, atomic_number, atomic_weight, category) VALUES (?, ?, ?, ?, ?)",
			e.Symbol, e.Name, e.AtomicNumber, e.AtomicWeight, string(e.Category)); err != nil {
			return fmt.Errorf("failed to insert element %s: %w", e.Symbol, err)
		}
	}
	for _, m := range emoji {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO emoji_words (word, emoji) VALUES (?, ?)", m.Word, m.Emoji); err != nil {
			return fmt.Errorf("failed to insert emoji word %s: %w", m.Word, err)
		}
	}
	for _, m := range symbols {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO symbols (key, symbol, name) VALUES (?, ?, ?)", m.Char, m.Symbol, m.Name); err != nil {
			return fmt.Errorf("failed to insert symbol %s: %w", m.Char, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
