package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RawDepsEmpty is the CoNLL-U sentinel for "no enhanced dependencies".
const RawDepsEmpty = "_"

var (
	// ErrMalformedDeps is returned by [Node.Deps] when a raw enhanced
	// dependency entry is not of the form "<ord>:<deprel>".
	ErrMalformedDeps = errors.New("malformed enhanced dependency")

	// ErrUnknownHead is returned by [Node.Deps] when a head ordinal in the
	// raw enhanced dependencies resolves to no registered node.
	ErrUnknownHead = errors.New("enhanced dependency head not in sentence")
)

// Dep is one enhanced (secondary) dependency edge: a head node and the
// relation label of the edge pointing at it.
type Dep struct {
	Parent *Node
	Deprel string
}

// RawDeps returns the CoNLL-U serialization of the node's enhanced
// dependencies: "<headOrd>:<deprel>" entries joined by "|", or "_" when
// there are none.
//
// When a structured list is cached (set through SetDeps or produced by a
// previous Deps call) it is authoritative: RawDeps re-serializes it in list
// order and refreshes the stored raw form. Otherwise the stored raw string
// is returned verbatim.
func (n *Node) RawDeps() string {
	if n.deps == nil {
		return n.rawDeps
	}
	if len(n.deps) == 0 {
		n.rawDeps = RawDepsEmpty
		return n.rawDeps
	}
	entries := make([]string, len(n.deps))
	for i, d := range n.deps {
		entries[i] = fmt.Sprintf("%d:%s", d.Parent.ord, d.Deprel)
	}
	n.rawDeps = strings.Join(entries, "|")
	return n.rawDeps
}

// SetRawDeps stores the given serialization verbatim and drops the
// structured cache, forcing a re-parse on the next Deps call.
func (n *Node) SetRawDeps(raw string) {
	n.rawDeps = raw
	n.deps = nil
}

// Deps returns the node's enhanced dependencies as a structured list.
//
// On first access after an invalidation the stored raw string is parsed:
// "_" yields an empty list, otherwise each "<ord>:<deprel>" entry has its
// head ordinal resolved against the sentence registry (ord 0 is the
// technical root). The result is cached, so repeated reads with no
// intervening SetRawDeps return the same list without re-parsing.
//
// Resolution failures return ErrUnknownHead, malformed entries
// ErrMalformedDeps; on error nothing is cached. The returned slice is the
// cache itself - modify the edge set through SetDeps instead.
func (n *Node) Deps() ([]Dep, error) {
	if n.deps != nil {
		return n.deps, nil
	}
	r := n.Root()

	if n.rawDeps == RawDepsEmpty || n.rawDeps == "" {
		n.deps = []Dep{}
		return n.deps, nil
	}

	entries := strings.Split(n.rawDeps, "|")
	parsed := make([]Dep, 0, len(entries))
	for _, entry := range entries {
		head, deprel, ok := strings.Cut(entry, ":")
		if !ok || deprel == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedDeps, entry)
		}
		ord, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedDeps, entry)
		}
		if r == nil {
			return nil, fmt.Errorf("%w: node is detached", ErrUnknownHead)
		}
		parent, ok := r.At(ord)
		if !ok {
			return nil, fmt.Errorf("%w: ord %d in %q", ErrUnknownHead, ord, n.rawDeps)
		}
		parsed = append(parsed, Dep{Parent: parent, Deprel: deprel})
	}
	n.deps = parsed
	return n.deps, nil
}

// SetDeps stores the structured edge list and marks it authoritative.
// The raw serialization becomes stale and is recomputed lazily on the next
// RawDeps call. A nil list is normalized to an empty one.
func (n *Node) SetDeps(deps []Dep) {
	if deps == nil {
		deps = []Dep{}
	}
	n.deps = deps
}
