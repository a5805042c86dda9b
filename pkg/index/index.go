// Package index provides name and address lookups over parsed hosts.
package index

import (
	"slices"
	"strings"

	"github.com/ccollicutt/hostparse/pkg/parser"
)

// Index maps domains and address tokens to the entries that define them.
// It is built once and read-only afterwards.
type Index struct {
	byName map[string][]parser.Host // lowercased domain -> entries
	byAddr map[string][]parser.Host // ip token -> entries
	hosts  []parser.Host
}

// New builds an Index from hosts, keeping their order.
func New(hosts []parser.Host) *Index {
	idx := &Index{
		byName: make(map[string][]parser.Host),
		byAddr: make(map[string][]parser.Host),
		hosts:  slices.Clone(hosts),
	}

	for _, h := range idx.hosts {
		for _, d := range h.Domains() {
			name := strings.ToLower(d)
			idx.byName[name] = appendUnique(idx.byName[name], h)
		}
		idx.byAddr[h.IP()] = append(idx.byAddr[h.IP()], h)
	}

	return idx
}

// Lookup returns the entries that list name, case-insensitively.
func (i *Index) Lookup(name string) []parser.Host {
	return slices.Clone(i.byName[strings.ToLower(name)])
}

// LookupAddr returns the entries whose address token is exactly addr.
func (i *Index) LookupAddr(addr string) []parser.Host {
	return slices.Clone(i.byAddr[addr])
}

// Len returns the number of indexed entries.
func (i *Index) Len() int {
	return len(i.hosts)
}

// Names returns every distinct lowercased domain, sorted.
func (i *Index) Names() []string {
	names := make([]string, 0, len(i.byName))
	for name := range i.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// appendUnique appends h unless an equal entry is already present, so a
// domain repeated on one line is only reported once.
func appendUnique(hosts []parser.Host, h parser.Host) []parser.Host {
	for _, existing := range hosts {
		if existing.Equal(h) {
			return hosts
		}
	}
	return append(hosts, h)
}
