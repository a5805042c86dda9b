// Package metrics exposes Prometheus collectors for hosts file parsing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hostparse"

// Line kinds used as the "kind" label on the lines counter.
const (
	KindBlank   = "blank"
	KindComment = "comment"
	KindData    = "data"
	KindInvalid = "invalid"
)

// Collector records parser activity on its own registry.
// All methods are safe to call on a nil *Collector.
type Collector struct {
	registry *prometheus.Registry

	lines          *prometheus.CounterVec
	entries        prometheus.Counter
	syntaxErrors   prometheus.Counter
	sizeRejections prometheus.Counter
	sourceBytes    *prometheus.GaugeVec
}

// New creates a Collector with its collectors registered on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		lines: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_total",
			Help:      "Number of hosts file lines read, by classification.",
		}, []string{"kind"}),
		entries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_total",
			Help:      "Number of host entries produced.",
		}),
		syntaxErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "syntax_errors_total",
			Help:      "Number of strict-mode syntax errors.",
		}),
		sizeRejections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "size_rejections_total",
			Help:      "Number of eager parses refused because the source was too large.",
		}),
		sourceBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "source_bytes",
			Help:      "Size in bytes of each parsed hosts source.",
		}, []string{"source"}),
	}
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ObserveLine counts one line of the given kind.
func (c *Collector) ObserveLine(kind string) {
	if c == nil {
		return
	}
	c.lines.WithLabelValues(kind).Inc()
}

// ObserveEntry counts one produced host entry.
func (c *Collector) ObserveEntry() {
	if c == nil {
		return
	}
	c.entries.Inc()
}

// ObserveSyntaxError counts one strict-mode syntax error.
func (c *Collector) ObserveSyntaxError() {
	if c == nil {
		return
	}
	c.syntaxErrors.Inc()
}

// ObserveSizeRejection counts one refused eager parse.
func (c *Collector) ObserveSizeRejection() {
	if c == nil {
		return
	}
	c.sizeRejections.Inc()
}

// SetSourceBytes records the size of a source.
func (c *Collector) SetSourceBytes(source string, size int64) {
	if c == nil {
		return
	}
	c.sourceBytes.WithLabelValues(source).Set(float64(size))
}

// WriteToTextfile writes the current values in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (c *Collector) WriteToTextfile(path string) error {
	if c == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, c.registry)
}
