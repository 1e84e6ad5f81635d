package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb/v2"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS quote_history (
	id           VARCHAR PRIMARY KEY,
	quote_text   VARCHAR NOT NULL,
	quote_author VARCHAR NOT NULL,
	sender_name  VARCHAR NOT NULL,
	sender_link  VARCHAR NOT NULL,
	quote_link   VARCHAR NOT NULL,
	fetched_at   TIMESTAMP NOT NULL
)`

// InitDuckDB opens the history database at path, creating parent
// directories and the schema when needed.
func InitDuckDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// HistoryEntry is one successfully fetched quote.
type HistoryEntry struct {
	ID        string
	Quote     Quote
	FetchedAt time.Time
}

// HistoryRepository records every quote the fetcher returned.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// OpenHistory is InitDuckDB followed by NewHistoryRepository.
func OpenHistory(path string) (*HistoryRepository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &HistoryRepository{db: db}, nil
}

func (r *HistoryRepository) Record(q Quote, at time.Time) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		ID:        uuid.NewString(),
		Quote:     q,
		FetchedAt: at.UTC(),
	}

	_, err := r.db.Exec(
		`INSERT INTO quote_history (id, quote_text, quote_author, sender_name, sender_link, quote_link, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, q.QuoteText, q.QuoteAuthor, q.SenderName, q.SenderLink, q.QuoteLink, entry.FetchedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record quote: %w", err)
	}
	return entry, nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (r *HistoryRepository) List(limit int) ([]*HistoryEntry, error) {
	query := `SELECT id, quote_text, quote_author, sender_name, sender_link, quote_link, fetched_at
		FROM quote_history ORDER BY fetched_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(
			&e.ID,
			&e.Quote.QuoteText,
			&e.Quote.QuoteAuthor,
			&e.Quote.SenderName,
			&e.Quote.SenderLink,
			&e.Quote.QuoteLink,
			&e.FetchedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *HistoryRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM quote_history`).Scan(&n)
	return n, err
}

func (r *HistoryRepository) Close() error {
	return r.db.Close()
}
