package database

import "errors"

// Cursor iterates over the rows of a metadata lookup.
type Cursor[T any] interface {
	// Next advances to the next row and reports whether one is available.
	Next() bool

	// Row decodes the current row.
	Row() (T, error)

	// Err returns the error, if any, that stopped iteration.
	Err() error

	// Close releases the cursor. It is safe to call more than once.
	Close() error
}

// Scanner is the row decoding capability shared by *sql.Rows and pgx.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// RowSource is a driver result set that a Cursor can wrap.
type RowSource interface {
	Scanner
	Next() bool
	Err() error
}

// ScanFunc decodes one row from a Scanner.
type ScanFunc[T any] func(Scanner) (T, error)

type rowsCursor[T any] struct {
	rows   RowSource
	close  func() error
	scan   ScanFunc[T]
	closed bool
}

// NewCursor wraps a driver result set. closeFn releases the result set.
func NewCursor[T any](rows RowSource, closeFn func() error, scan ScanFunc[T]) Cursor[T] {
	return &rowsCursor[T]{rows: rows, close: closeFn, scan: scan}
}

func (c *rowsCursor[T]) Next() bool {
	if c.closed {
		return false
	}
	return c.rows.Next()
}

func (c *rowsCursor[T]) Row() (T, error) {
	if c.closed {
		var zero T
		return zero, ErrCursorClosed
	}
	return c.scan(c.rows)
}

func (c *rowsCursor[T]) Err() error {
	return c.rows.Err()
}

func (c *rowsCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.close()
}

// ErrCursorClosed is returned when reading from a closed Cursor.
var ErrCursorClosed = errors.New("cursor closed")

type sliceCursor[T any] struct {
	rows   []T
	pos    int
	closed bool
}

// NewSliceCursor returns a Cursor over rows already held in memory.
func NewSliceCursor[T any](rows []T) Cursor[T] {
	return &sliceCursor[T]{rows: rows, pos: -1}
}

func (c *sliceCursor[T]) Next() bool {
	if c.closed || c.pos+1 >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor[T]) Row() (T, error) {
	var zero T
	if c.closed {
		return zero, ErrCursorClosed
	}
	if c.pos < 0 || c.pos >= len(c.rows) {
		return zero, errors.New("cursor not positioned on a row")
	}
	return c.rows[c.pos], nil
}

func (c *sliceCursor[T]) Err() error {
	return nil
}

func (c *sliceCursor[T]) Close() error {
	c.closed = true
	return nil
}
