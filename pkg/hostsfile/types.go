// Package hostsfile provides line-oriented access to hosts file data.
package hostsfile

import "context"

// Line is a single raw line read from a LineSource.
type Line struct {
	// Text is the line content without the trailing newline.
	Text string

	// Num is the 1-based line number in the source.
	Num int
}

// LineSource provides ordered, resettable access to the raw lines of a hosts file.
// Implementations hold a single read cursor and are not safe for concurrent use.
type LineSource interface {
	// Name identifies the source in errors and reports.
	Name() string

	// Size returns the total byte size of the backing store.
	Size() int64

	// Next returns the next raw line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (Line, error)

	// Reset moves the cursor back to the first line.
	Reset() error

	// Close releases any resources held by the source.
	Close() error
}
