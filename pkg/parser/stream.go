package parser

import (
	"context"
	"errors"
	"io"
)

// Stream is a forward-only sequence of hosts produced on demand.
// Each call to Next reads only as many lines as needed for the next Host.
type Stream struct {
	parser *Parser

	replay    []Host
	replaying bool
	pos       int

	started bool
	err     error
}

// Next returns the next Host. It returns io.EOF when the source is
// exhausted. A strict-mode syntax error is returned when the offending
// line is reached; hosts already returned stay valid. After any error the
// stream is finished and keeps returning that error.
func (s *Stream) Next(ctx context.Context) (Host, error) {
	if s.err != nil {
		return Host{}, s.err
	}

	if s.replaying {
		if s.pos >= len(s.replay) {
			s.err = io.EOF
			return Host{}, s.err
		}
		h := s.replay[s.pos]
		s.pos++
		return h, nil
	}

	p := s.parser
	if !s.started {
		s.started = true
		if err := p.source.Reset(); err != nil {
			return Host{}, s.fail(err)
		}
		if p.state != StateParsed {
			p.state = StateParsing
		}
	}

	for {
		line, err := p.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return Host{}, s.finish()
		}
		if err != nil {
			return Host{}, s.fail(err)
		}

		h, ok, err := p.process(line)
		if err != nil {
			return Host{}, s.fail(err)
		}
		if ok {
			return h, nil
		}
	}
}

// finish rewinds the source so another traversal can start.
func (s *Stream) finish() error {
	p := s.parser
	if err := p.source.Reset(); err != nil {
		return s.fail(err)
	}
	if p.state == StateParsing {
		p.state = StateUnparsed
	}
	s.err = io.EOF
	return s.err
}

func (s *Stream) fail(err error) error {
	s.parser.state = StateFailed
	s.err = err
	return err
}
