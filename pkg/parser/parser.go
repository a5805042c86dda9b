package parser

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ccollicutt/hostparse/pkg/hostsfile"
	"github.com/ccollicutt/hostparse/pkg/metrics"
)

// DefaultMaxEagerSize is the largest source ParseAll accepts without forcing (64MB).
const DefaultMaxEagerSize int64 = 64 * 1024 * 1024

// State is the lifecycle state of a Parser's result.
type State int

const (
	// StateUnparsed means no result has been computed yet.
	StateUnparsed State = iota
	// StateParsing means a traversal is in progress.
	StateParsing
	// StateParsed means a result has been cached by ParseAll.
	StateParsed
	// StateFailed means the last parse attempt failed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnparsed:
		return "unparsed"
	case StateParsing:
		return "parsing"
	case StateParsed:
		return "parsed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Parser reads Host records from a LineSource.
//
// The source is treated as immutable for the Parser's lifetime, so once
// ParseAll has produced a result it is returned on every later call and
// replayed by Parse without rescanning. A Parser is not safe for concurrent use.
type Parser struct {
	source       hostsfile.LineSource
	strict       bool
	maxEagerSize int64
	logger       *logrus.Logger
	metrics      *metrics.Collector

	state  State
	hosts  []Host
	cached bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes single-token data lines a syntax error instead of skipping them.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithMaxEagerSize sets the size limit for ParseAll (default 64MB).
func WithMaxEagerSize(n int64) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxEagerSize = n
		}
	}
}

// WithLogger sets the logger for skipped lines and syntax errors.
func WithLogger(logger *logrus.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records parse activity on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(p *Parser) {
		p.metrics = c
	}
}

// New creates a Parser over source. The Parser owns source from here on and
// releases it in Close. It fails with a file-level error if the source is empty.
func New(source hostsfile.LineSource, opts ...Option) (*Parser, error) {
	if source == nil {
		return nil, &hostsfile.Error{Op: "parse", Err: errors.New("no line source")}
	}
	if source.Size() == 0 {
		return nil, &hostsfile.Error{Op: "parse", Path: source.Name(), Err: hostsfile.ErrEmpty}
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	p := &Parser{
		source:       source,
		maxEagerSize: DefaultMaxEagerSize,
		logger:       discard,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.metrics.SetSourceBytes(source.Name(), source.Size())

	return p, nil
}

// Strict reports whether strict syntax mode is enabled.
func (p *Parser) Strict() bool {
	return p.strict
}

// Source returns the underlying LineSource.
func (p *Parser) Source() hostsfile.LineSource {
	return p.source
}

// State returns the current lifecycle state.
func (p *Parser) State() State {
	return p.state
}

// Parse returns a lazy stream of hosts. Each stream starts at the first line
// of the source; if ParseAll has cached a result, the stream replays it.
// Only one stream may be consumed at a time.
func (p *Parser) Parse() *Stream {
	if p.cached {
		return &Stream{parser: p, replay: p.hosts, replaying: true}
	}
	return &Stream{parser: p}
}

// ParseAll parses the whole source and caches the result.
//
// Sources larger than the eager size limit are refused with a *SizeError
// before any line is read, unless forceLarge is set. On a strict-mode syntax
// error no result is returned or cached.
func (p *Parser) ParseAll(ctx context.Context, forceLarge bool) ([]Host, error) {
	if p.cached {
		return slices.Clone(p.hosts), nil
	}

	if size := p.source.Size(); !forceLarge && size > p.maxEagerSize {
		p.state = StateFailed
		p.metrics.ObserveSizeRejection()
		return nil, &SizeError{Source: p.source.Name(), Size: size, Limit: p.maxEagerSize}
	}

	stream := p.Parse()
	hosts := make([]Host, 0)
	for {
		h, err := stream.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, h)
	}

	p.hosts = hosts
	p.cached = true
	p.state = StateParsed
	p.logger.WithFields(logrus.Fields{
		"source":  p.source.Name(),
		"entries": len(hosts),
	}).Debug("hosts file parsed")

	return slices.Clone(hosts), nil
}

// Close releases the underlying source.
func (p *Parser) Close() error {
	return p.source.Close()
}

// process runs one raw line through normalization, classification and
// validation. It reports whether a Host was produced.
func (p *Parser) process(line hostsfile.Line) (Host, bool, error) {
	normalized := Normalize(line.Text)
	log := p.logger.WithFields(logrus.Fields{
		"source": p.source.Name(),
		"line":   line.Num,
	})

	switch Classify(normalized) {
	case KindBlank:
		p.metrics.ObserveLine(metrics.KindBlank)
		return Host{}, false, nil
	case KindComment:
		p.metrics.ObserveLine(metrics.KindComment)
		return Host{}, false, nil
	}

	if CountDelimiters(normalized) < 1 {
		p.metrics.ObserveLine(metrics.KindInvalid)
		if p.strict {
			p.metrics.ObserveSyntaxError()
			log.WithField("text", normalized).Warn("line has no domain")
			return Host{}, false, &SyntaxError{Source: p.source.Name(), Line: line.Num, Text: normalized}
		}
		log.WithField("text", normalized).Debug("skipping line without domain")
		return Host{}, false, nil
	}

	p.metrics.ObserveLine(metrics.KindData)
	p.metrics.ObserveEntry()
	return BuildHost(normalized, line.Num), true, nil
}
