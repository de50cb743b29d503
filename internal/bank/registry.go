// Package bank holds the static table of supported bank export profiles.
package bank

import (
	"fmt"
	"strings"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

// Style selects the line normalizer used on the text pathway.
type Style int

const (
	// StyleUnsupported marks a bank that cannot be converted from text.
	StyleUnsupported Style = iota
	StylePassthrough
	StyleContinuation
	StyleColumnMerge
	StyleHeaderRemap
	StyleSignedRemap
	StyleHeaderSeek
)

var styleNames = map[Style]string{
	StyleUnsupported:  "unsupported",
	StylePassthrough:  "passthrough",
	StyleContinuation: "continuation-merge",
	StyleColumnMerge:  "column-merge",
	StyleHeaderRemap:  "header-remap",
	StyleSignedRemap:  "signed-remap",
	StyleHeaderSeek:   "header-seek",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Profile describes how one bank's export maps onto the canonical schema.
// Field names are the header names after normalization; an empty name never
// matches a column.
type Profile struct {
	ID           string
	Name         string
	HeaderPrefix string // first line of the real header, "" to keep every line
	Style        Style

	DateField   string
	PayeeField  string
	DebitField  string
	CreditField string
	MemoField   string

	// PositionalHeaders names spreadsheet columns left to right. Only
	// profiles that set it take part in spreadsheet detection.
	PositionalHeaders []string
}

// SupportsText reports whether the bank has a text normalizer.
func (p Profile) SupportsText() bool { return p.Style != StyleUnsupported }

// SupportsSheet reports whether the bank has a positional spreadsheet layout.
func (p Profile) SupportsSheet() bool { return len(p.PositionalHeaders) > 0 }

// FieldFor maps a source header to its canonical field.
func (p Profile) FieldFor(header string) model.Field {
	if header == "" {
		return model.FieldUnrecognized
	}
	switch header {
	case p.DateField:
		return model.FieldDate
	case p.PayeeField:
		return model.FieldPayee
	case p.DebitField:
		return model.FieldOutflow
	case p.CreditField:
		return model.FieldInflow
	case p.MemoField:
		return model.FieldMemo
	default:
		return model.FieldUnrecognized
	}
}

// Registry is an ordered, read-only set of profiles once built.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register adds a profile. Panics on duplicate ID.
func (r *Registry) Register(p Profile) {
	key := strings.ToLower(p.ID)
	if _, ok := r.profiles[key]; ok {
		panic("duplicate bank profile: " + key)
	}
	p.PositionalHeaders = append([]string(nil), p.PositionalHeaders...)
	r.profiles[key] = p
	r.order = append(r.order, key)
}

// Get returns the profile for id (case-insensitive).
func (r *Registry) Get(id string) (Profile, bool) {
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}

// Lookup is Get that wraps model.ErrUnknownBank on a miss.
func (r *Registry) Lookup(id string) (Profile, error) {
	p, ok := r.Get(id)
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", model.ErrUnknownBank, id)
	}
	return p, nil
}

// IDs returns profile IDs in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// All returns profiles in registration order.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.profiles[key])
	}
	return out
}

// Positional returns the spreadsheet-capable profiles in registration order,
// which is the order detection tries them in.
func (r *Registry) Positional() []Profile {
	var out []Profile
	for _, p := range r.All() {
		if p.SupportsSheet() {
			out = append(out, p)
		}
	}
	return out
}
