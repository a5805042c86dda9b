package hostsfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultMaxLineSize bounds the length of a single line read from a file.
const DefaultMaxLineSize = 1024 * 1024

// FileSource implements LineSource for a hosts file on disk.
// The file is held under an exclusive advisory lock from Open until Close.
type FileSource struct {
	path        string
	size        int64
	maxLineSize int
	lockTimeout time.Duration

	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// Option configures a FileSource.
type Option func(*FileSource)

// WithLockTimeout bounds how long Open waits for the exclusive lock.
// Zero (the default) waits indefinitely.
func WithLockTimeout(d time.Duration) Option {
	return func(s *FileSource) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithMaxLineSize sets the longest line the source accepts (default 1MB).
func WithMaxLineSize(n int) Option {
	return func(s *FileSource) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

// Open opens path for reading and acquires an exclusive lock on it.
func Open(path string, opts ...Option) (*FileSource, error) {
	s := &FileSource{
		path:        path,
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	if path == "" {
		return nil, &Error{Op: "open", Err: errors.New("path is required")}
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}

	if err := lockFile(f, s.lockTimeout); err != nil {
		_ = f.Close()
		return nil, &Error{Op: "lock", Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		_ = unlockFile(f)
		_ = f.Close()
		return nil, &Error{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		_ = unlockFile(f)
		_ = f.Close()
		return nil, &Error{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	s.file = f
	s.size = info.Size()
	s.resetScanner()

	return s, nil
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Size returns the file size in bytes as observed when the file was opened.
func (s *FileSource) Size() int64 {
	return s.size
}

// Next returns the next line of the file.
// Returns io.EOF when the end of the file is reached.
func (s *FileSource) Next(ctx context.Context) (Line, error) {
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if s.file == nil {
		return Line{}, &Error{Op: "read", Path: s.path, Err: ErrClosed}
	}

	if s.scanner.Scan() {
		s.line++
		return Line{
			Text: strings.TrimSuffix(s.scanner.Text(), "\r"),
			Num:  s.line,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return Line{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	return Line{}, io.EOF
}

// Reset rewinds the file so the next call to Next returns line 1.
func (s *FileSource) Reset() error {
	if s.file == nil {
		return &Error{Op: "reset", Path: s.path, Err: ErrClosed}
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return &Error{Op: "reset", Path: s.path, Err: err}
	}
	s.resetScanner()
	return nil
}

// Close releases the lock and closes the file. It is safe to call more than once.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}

	unlockErr := unlockFile(s.file)
	closeErr := s.file.Close()
	s.file = nil
	s.scanner = nil

	if unlockErr != nil {
		return &Error{Op: "unlock", Path: s.path, Err: unlockErr}
	}
	if closeErr != nil {
		return &Error{Op: "close", Path: s.path, Err: closeErr}
	}
	return nil
}

func (s *FileSource) resetScanner() {
	s.scanner = bufio.NewScanner(s.file)
	s.scanner.Buffer(make([]byte, 0, min(64*1024, s.maxLineSize)), s.maxLineSize)
	s.line = 0
}
