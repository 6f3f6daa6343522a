package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Exchange is one logged question/reply pair. The log is server-side
// analytics for the site owner; it is not session persistence, and the
// widget never reads it back.
type Exchange struct {
	ID        int       `json:"id" db:"id"`
	VisitorID string    `json:"visitor_id" db:"visitor_id"`
	Question  string    `json:"question" db:"question"`
	Reply     string    `json:"reply" db:"reply"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Store struct {
	db *sqlx.DB
}

// New opens the SQLite conversation log and initializes its schema.
func New(path string) (*Store, error) {
	if path == "" {
		path = "portfolio.db"
	}

	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	conversationsTable := `
	CREATE TABLE IF NOT EXISTS conversations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		visitor_id TEXT NOT NULL,
		question TEXT NOT NULL,
		reply TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_conversations_visitor ON conversations(visitor_id);`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_created ON conversations(created_at);`,
	}

	if _, err := s.db.Exec(conversationsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for _, index := range indexes {
		if _, err := s.db.Exec(index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// LogExchange records one successful question/reply pair.
func (s *Store) LogExchange(visitorID, question, reply string) error {
	query := `INSERT INTO conversations (visitor_id, question, reply, created_at)
			  VALUES (?, ?, ?, ?)`

	if _, err := s.db.Exec(query, visitorID, question, reply, time.Now()); err != nil {
		return fmt.Errorf("failed to log exchange: %w", err)
	}
	return nil
}

// Recent returns the newest exchanges, newest first.
func (s *Store) Recent(limit int) ([]Exchange, error) {
	if limit <= 0 {
		limit = 50
	}

	var exchanges []Exchange
	query := `SELECT id, visitor_id, question, reply, created_at
			  FROM conversations ORDER BY created_at DESC LIMIT ?`

	if err := s.db.Select(&exchanges, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list exchanges: %w", err)
	}
	return exchanges, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
