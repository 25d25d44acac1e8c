package tree

import "sort"

// NodeView is an ordered, read-only view over a set of nodes anchored to an
// origin node. Children and Descendants return NodeView values; consume them
// either plainly through Nodes, or with Filter for parameterized queries.
//
// A view is a snapshot of the tree at the time it was produced. Mutating the
// tree invalidates outstanding views; obtain a fresh one afterwards.
type NodeView struct {
	nodes  []*Node
	origin *Node
}

// FilterOptions selects a subset of a view relative to its origin node.
// The options compose: PrecedingOnly and FollowingOnly together keep only
// nodes sharing the origin's ord.
type FilterOptions struct {
	AddSelf       bool // Include the origin node in the result
	FollowingOnly bool // Keep only nodes with ord >= origin's ord
	PrecedingOnly bool // Keep only nodes with ord <= origin's ord
}

// Nodes returns the view's members sorted ascending by ord.
// The returned slice should not be modified - use it as a read-only view.
func (v NodeView) Nodes() []*Node { return v.nodes }

// Len returns the number of nodes in the view.
func (v NodeView) Len() int { return len(v.nodes) }

// Origin returns the node the view is anchored to.
func (v NodeView) Origin() *Node { return v.origin }

// Filter returns the view's members restricted by opts, always sorted
// ascending by ord. With zero options it returns a copy of the plain view.
func (v NodeView) Filter(opts FilterOptions) []*Node {
	result := make([]*Node, 0, len(v.nodes)+1)
	result = append(result, v.nodes...)
	if opts.AddSelf {
		result = append(result, v.origin)
	}
	if opts.PrecedingOnly {
		result = keep(result, func(n *Node) bool { return n.ord <= v.origin.ord })
	}
	if opts.FollowingOnly {
		result = keep(result, func(n *Node) bool { return n.ord >= v.origin.ord })
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ord < result[j].ord })
	return result
}

func keep(nodes []*Node, pred func(*Node) bool) []*Node {
	out := nodes[:0]
	for _, n := range nodes {
		if pred(n) {
			out = append(out, n)
		}
	}
	return out
}
