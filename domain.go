package app

import "context"

// Entry represents a single posted note.
type Entry struct {
	ID    int64
	Title string
	Text  string
}

// EntryConn is a request-scoped view of the entry store. Implementations
// acquire the underlying connection lazily, on first use, and release it
// exactly once when the request completes.
type EntryConn interface {
	List(ctx context.Context) ([]Entry, error)
	Insert(ctx context.Context, title, text string) error
	Delete(ctx context.Context, id int64) error
	Release() error
}

// EntryStore represents the actions that can be taken about entries.
type EntryStore interface {
	Conn() EntryConn
	Close() error
}
