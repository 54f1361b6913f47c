package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	app "github.com/etitcombe/jotter"
	_ "github.com/mattn/go-sqlite3" // sqlite
)

// Store manages access to the entries database.
type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore creates a new instance of a Store.
func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

// Open opens the connection to the database.
func (s *Store) Open() error {
	// Ensure a DSN is set before attempting to open the database.
	if s.dsn == "" {
		return fmt.Errorf("dsn required")
	}

	// Make the parent directory unless using an in-memory db.
	if s.dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(s.dsn), 0700); err != nil {
			return err
		}
	}

	// Connect to the database.
	var err error
	if s.db, err = sql.Open("sqlite3", s.dsn); err != nil {
		return err
	}

	// Enable WAL. SQLite performs better with the WAL because it allows
	// multiple readers to operate while data is being written.
	if _, err := s.db.Exec(`PRAGMA journal_mode = wal;`); err != nil {
		return fmt.Errorf("enable wal: %w", err)
	}

	return nil
}

// Close closes the connection to the data store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Init executes the provided schema script. The shipped Schema drops and
// recreates the entries table, so this is first-time setup only; nothing
// in the request path calls it.
func (s *Store) Init(ctx context.Context, schema string) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Conn returns a request-scoped connection to the store. The underlying
// connection is checked out of the pool lazily, on the first query, and
// goes back when Release is called.
func (s *Store) Conn() app.EntryConn {
	return &Conn{store: s}
}

// Conn is the request-scoped handle on the entries table. It is not safe
// for use from more than one goroutine; each request gets its own.
type Conn struct {
	store *Store
	conn  *sql.Conn
}

// List returns all entries, newest first.
func (c *Conn) List(ctx context.Context) ([]app.Entry, error) {
	conn, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, `SELECT id, title, text FROM entries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []app.Entry

	for rows.Next() {
		var e app.Entry
		err := rows.Scan(&e.ID, &e.Title, &e.Text)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Insert appends an entry. Each insert is its own durable statement;
// there is no batching.
func (c *Conn) Insert(ctx context.Context, title, text string) error {
	conn, err := c.acquire(ctx)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, `INSERT INTO entries (title, text) VALUES (?, ?)`, title, text)
	return err
}

// Delete removes the entry with the matching id. Deleting an id that is
// not there is not an error.
func (c *Conn) Delete(ctx context.Context, id int64) error {
	conn, err := c.acquire(ctx)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	return err
}

// Release returns the underlying connection to the pool. It is a no-op
// when no query ever ran.
func (c *Conn) Release() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Conn) acquire(ctx context.Context) (*sql.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := c.store.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	c.conn = conn
	return c.conn, nil
}
