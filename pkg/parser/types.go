// Package parser turns hosts file lines into Host records.
package parser

import (
	"encoding/json"
	"slices"
	"strings"
)

// Host is a single accepted hosts file entry. It is immutable: accessors
// return copies and there are no setters.
type Host struct {
	ip      string
	domains []string
	line    int
}

// NewHost creates a Host. The domains slice is copied.
func NewHost(ip string, domains []string, line int) Host {
	return Host{
		ip:      ip,
		domains: slices.Clone(domains),
		line:    line,
	}
}

// IP returns the address token. It is not validated as a real address.
func (h Host) IP() string {
	return h.ip
}

// Domains returns the names mapped to the address, in file order.
func (h Host) Domains() []string {
	return slices.Clone(h.domains)
}

// Line returns the 1-based line number of the entry in its source.
func (h Host) Line() int {
	return h.line
}

// Equal reports whether h and other have the same address, domains and line.
func (h Host) Equal(other Host) bool {
	return h.ip == other.ip && h.line == other.line && slices.Equal(h.domains, other.domains)
}

// Context returns the entry as a map with ip, domains and line keys.
func (h Host) Context() map[string]any {
	return map[string]any{
		"ip":      h.ip,
		"domains": h.Domains(),
		"line":    h.line,
	}
}

// String renders the entry as a hosts file line.
func (h Host) String() string {
	return h.ip + "\t" + strings.Join(h.domains, Delimiter)
}

// hostView is the serialized form of a Host.
type hostView struct {
	IP      string   `json:"ip" yaml:"ip"`
	Domains []string `json:"domains" yaml:"domains"`
	Line    int      `json:"line" yaml:"line"`
}

func (h Host) view() hostView {
	return hostView{IP: h.ip, Domains: h.Domains(), Line: h.line}
}

// MarshalJSON implements json.Marshaler.
func (h Host) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.view())
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Host) UnmarshalJSON(data []byte) error {
	var v hostView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*h = NewHost(v.IP, v.Domains, v.Line)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h Host) MarshalYAML() (any, error) {
	return h.view(), nil
}
