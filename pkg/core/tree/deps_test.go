package tree

import (
	"errors"
	"testing"
)

func TestDepsResolution(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b", "c")
	nodes[2].SetRawDeps("2:conj|1:nsubj")

	deps, err := nodes[2].Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("len(deps) = %d, want 2", len(deps))
	}
	if deps[0].Parent != nodes[1] || deps[0].Deprel != "conj" {
		t.Errorf("deps[0] = {%v %q}, want {node@2 conj}", deps[0].Parent, deps[0].Deprel)
	}
	if deps[1].Parent != nodes[0] || deps[1].Deprel != "nsubj" {
		t.Errorf("deps[1] = {%v %q}, want {node@1 nsubj}", deps[1].Parent, deps[1].Deprel)
	}
}

func TestDepsRoundTrip(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b", "c")
	nodes[2].SetRawDeps("2:conj|1:nsubj")

	if _, err := nodes[2].Deps(); err != nil {
		t.Fatalf("Deps: %v", err)
	}
	// Re-serialization preserves the original split order.
	if got, want := nodes[2].RawDeps(), "2:conj|1:nsubj"; got != want {
		t.Errorf("RawDeps() after Deps() = %q, want %q", got, want)
	}
}

func TestDepsCachedBetweenReads(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b")
	nodes[1].SetRawDeps("1:nsubj")

	first, err := nodes[1].Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	second, err := nodes[1].Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	// Same backing slice: the second read must not re-parse.
	if &first[0] != &second[0] {
		t.Error("second Deps() read returned a re-parsed list")
	}
}

func TestSetRawDepsInvalidatesCache(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b")
	nodes[1].SetRawDeps("1:nsubj")
	if _, err := nodes[1].Deps(); err != nil {
		t.Fatalf("Deps: %v", err)
	}

	nodes[1].SetRawDeps("1:obj")
	deps, err := nodes[1].Deps()
	if err != nil {
		t.Fatalf("Deps after invalidation: %v", err)
	}
	if len(deps) != 1 || deps[0].Deprel != "obj" {
		t.Errorf("deps = %v, want single obj edge", deps)
	}
}

func TestSetDepsMakesStructuredAuthoritative(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b", "c")
	nodes[2].SetRawDeps("1:nsubj")

	nodes[2].SetDeps([]Dep{{Parent: nodes[1], Deprel: "conj"}})
	if got, want := nodes[2].RawDeps(), "2:conj"; got != want {
		t.Errorf("RawDeps() = %q, want %q (raw recomputed from structured)", got, want)
	}
}

func TestDepsEmptySentinel(t *testing.T) {
	_, nodes := buildFlat(t, "a")
	deps, err := nodes[0].Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	if len(deps) != 0 {
		t.Errorf("deps = %v, want empty for sentinel %q", deps, RawDepsEmpty)
	}
	if got := nodes[0].RawDeps(); got != RawDepsEmpty {
		t.Errorf("RawDeps() = %q, want %q", got, RawDepsEmpty)
	}
}

func TestDepsRootHead(t *testing.T) {
	r, nodes := buildFlat(t, "a")
	nodes[0].SetRawDeps("0:root")

	deps, err := nodes[0].Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	if deps[0].Parent != r.Node() {
		t.Errorf("head 0 resolved to %v, want technical root", deps[0].Parent)
	}
}

func TestDepsErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "UnknownHead", raw: "9:nsubj", want: ErrUnknownHead},
		{name: "NegativeHead", raw: "-1:nsubj", want: ErrUnknownHead},
		{name: "NoColon", raw: "nsubj", want: ErrMalformedDeps},
		{name: "NonNumericHead", raw: "x:nsubj", want: ErrMalformedDeps},
		{name: "EmptyDeprel", raw: "1:", want: ErrMalformedDeps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, nodes := buildFlat(t, "a", "b")
			nodes[1].SetRawDeps(tt.raw)
			if _, err := nodes[1].Deps(); !errors.Is(err, tt.want) {
				t.Errorf("Deps() = %v, want %v", err, tt.want)
			}
			// Errors must not poison the cache with a partial parse.
			if _, err := nodes[1].Deps(); !errors.Is(err, tt.want) {
				t.Errorf("second Deps() = %v, want %v again", err, tt.want)
			}
		})
	}
}

func TestDepsSubtypedRelation(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b")
	// Relation labels may themselves contain colons; only the first one
	// separates the head ordinal.
	nodes[1].SetRawDeps("1:nsubj:pass")

	deps, err := nodes[1].Deps()
	if err != nil {
		t.Fatalf("Deps: %v", err)
	}
	if deps[0].Deprel != "nsubj:pass" {
		t.Errorf("Deprel = %q, want nsubj:pass", deps[0].Deprel)
	}
}
