// Package feats implements the morphological feature set attached to tree nodes.
//
// Features are name=value pairs with the CoNLL-U string form
// "Case=Nom|Number=Sing". The serialized form lists features sorted
// case-insensitively by name, and the underscore sentinel "_" stands for an
// empty set. The tree package treats Feats as an opaque value object; only
// this package knows the wire format.
package feats

import (
	"sort"
	"strings"
)

// Empty is the CoNLL-U sentinel for an empty feature set.
const Empty = "_"

// Feats holds morphological features for a single node.
// The zero value is not usable - use New, Parse or FromMap.
type Feats struct {
	m map[string]string
}

// New creates an empty feature set.
func New() *Feats {
	return &Feats{m: make(map[string]string)}
}

// Parse builds a feature set from its CoNLL-U serialization.
// The sentinel "_" and the empty string yield an empty set. Entries without
// an equals sign are ignored; parsing is deliberately lenient because treebank
// files in the wild contain malformed feature columns.
func Parse(s string) *Feats {
	f := New()
	f.SetString(s)
	return f
}

// FromMap builds a feature set from a name-to-value mapping.
// The map is copied; later changes to it do not affect the feature set.
func FromMap(m map[string]string) *Feats {
	f := New()
	for name, value := range m {
		if name != "" && value != "" {
			f.m[name] = value
		}
	}
	return f
}

// SetString replaces the whole feature set with the parse of s.
func (f *Feats) SetString(s string) {
	f.m = make(map[string]string)
	if s == "" || s == Empty {
		return
	}
	for _, entry := range strings.Split(s, "|") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" || value == "" {
			continue
		}
		f.m[name] = value
	}
}

// Get returns the value of the named feature, or "" if it is not set.
func (f *Feats) Get(name string) string { return f.m[name] }

// Has reports whether the named feature is set.
func (f *Feats) Has(name string) bool {
	_, ok := f.m[name]
	return ok
}

// Set assigns a value to the named feature.
// Setting an empty value removes the feature.
func (f *Feats) Set(name, value string) {
	if value == "" {
		delete(f.m, name)
		return
	}
	f.m[name] = value
}

// Del removes the named feature if present.
func (f *Feats) Del(name string) { delete(f.m, name) }

// Len returns the number of features.
func (f *Feats) Len() int { return len(f.m) }

// Map returns a copy of the features as a plain map.
func (f *Feats) Map() map[string]string {
	m := make(map[string]string, len(f.m))
	for name, value := range f.m {
		m[name] = value
	}
	return m
}

// Clone returns an independent copy of the feature set.
func (f *Feats) Clone() *Feats { return FromMap(f.m) }

// String returns the CoNLL-U serialization of the feature set.
// Features are sorted case-insensitively by name, with the original name as a
// tie-breaker. An empty set serializes as "_".
func (f *Feats) String() string {
	if len(f.m) == 0 {
		return Empty
	}
	names := make([]string, 0, len(f.m))
	for name := range f.m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(f.m[name])
	}
	return b.String()
}
