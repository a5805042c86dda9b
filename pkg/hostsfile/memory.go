package hostsfile

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// MemorySource implements LineSource over in-memory hosts data.
type MemorySource struct {
	name  string
	size  int64
	lines []string
	pos   int
}

// NewMemorySource creates a LineSource over data. Lines are split on "\n" and a
// trailing "\r" is dropped, matching FileSource.
func NewMemorySource(name, data string) *MemorySource {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	return &MemorySource{
		name:  name,
		size:  int64(len(data)),
		lines: lines,
	}
}

// FromLines creates a MemorySource from individual lines joined with "\n".
func FromLines(name string, lines ...string) *MemorySource {
	return NewMemorySource(name, strings.Join(lines, "\n"))
}

// Name returns the name the source was created with.
func (s *MemorySource) Name() string {
	return s.name
}

// Size returns the byte length of the data.
func (s *MemorySource) Size() int64 {
	return s.size
}

// Next returns the next line, or io.EOF when all lines have been read.
func (s *MemorySource) Next(ctx context.Context) (Line, error) {
	if err := ctx.Err(); err != nil {
		return Line{}, err
	}
	if s.pos >= len(s.lines) {
		return Line{}, io.EOF
	}
	s.pos++
	return Line{Text: s.lines[s.pos-1], Num: s.pos}, nil
}

// Reset rewinds to the first line.
func (s *MemorySource) Reset() error {
	s.pos = 0
	return nil
}

// Close is a no-op.
func (s *MemorySource) Close() error {
	return nil
}
