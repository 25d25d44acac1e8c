package tree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var (
	// ErrOrdOutOfSync is returned by [Root.Validate] when the ord sequence
	// has gaps or duplicates, or disagrees with the registry positions.
	ErrOrdOutOfSync = errors.New("ord sequence out of sync with registry")

	// ErrParentMismatch is returned by [Root.Validate] when a parent's
	// children list and a child's parent pointer disagree.
	ErrParentMismatch = errors.New("parent and children links disagree")

	// ErrChildrenOrder is returned by [Root.Validate] when a children list
	// is not sorted ascending by ord.
	ErrChildrenOrder = errors.New("children not sorted by ord")

	// ErrCycleDetected is returned by [Root.Validate] when a node is its own
	// ancestor. This indicates corruption, since SetParent rejects cycles.
	ErrCycleDetected = errors.New("tree contains a cycle")

	// ErrUnregisteredNode is returned by [Root.Validate] when a node
	// reachable from the root is missing from the registry.
	ErrUnregisteredNode = errors.New("reachable node missing from registry")
)

// Root owns one sentence: a technical root node with ord 0 plus the
// ord-indexed registry of all its descendants. The registry is the
// authoritative word order - descendants[i] always has ord i+1 between
// mutations.
//
// Root is not safe for concurrent mutation. Cached views are rebuilt
// synchronously inside mutating calls, so read-only access is safe strictly
// between mutations.
type Root struct {
	SentID   string   // Sentence id, e.g. "s123"; assigned a UUID when absent
	Zone     string   // Annotation zone label, e.g. "en_udpipe"; may be empty
	Text     string   // Raw sentence text as annotated in the source
	Comments []string // Comment lines other than sent_id and text

	node        *Node
	descendants []*Node
	mwts        []*MWT
}

// NewRoot creates an empty sentence. The sentence id is initialized to a
// fresh UUID so every node address is document-unique even before the
// sentence is given an explicit id.
func NewRoot() *Root {
	r := &Root{SentID: uuid.NewString()}
	r.node = newNode()
	r.node.tree = r
	return r
}

// Node returns the technical root node (ord 0). Attach the sentence's words
// under it with CreateChild or SetParent.
func (r *Root) Node() *Node { return r.node }

// CreateChild creates a new top-level node attached directly to the
// technical root. It is shorthand for r.Node().CreateChild(a).
func (r *Root) CreateChild(a Attrs) *Node { return r.node.CreateChild(a) }

// Nodes returns the ord-indexed registry of all nodes in the sentence,
// excluding the technical root. The slice is the live registry - treat it
// as read-only.
func (r *Root) Nodes() []*Node { return r.descendants }

// NodeCount returns the number of registered nodes, excluding the root.
func (r *Root) NodeCount() int { return len(r.descendants) }

// At returns the node with the given ord. Ord 0 resolves to the technical
// root. The second result is false when no node has that ord.
func (r *Root) At(ord int) (*Node, bool) {
	if ord == 0 {
		return r.node, true
	}
	if ord < 1 || ord > len(r.descendants) {
		return nil, false
	}
	return r.descendants[ord-1], true
}

// Address returns the document-wide address prefix of the sentence:
// the sentence id, with "/<zone>" appended when a zone is set.
func (r *Root) Address() string {
	if r.Zone != "" {
		return r.SentID + "/" + r.Zone
	}
	return r.SentID
}

// Renumber rebuilds the registry and reassigns consecutive ords.
//
// All nodes reachable from the root are gathered, sorted by their current
// fractional order key (which equals the ord except for nodes just
// repositioned by a Shift call) and assigned ords 1..n. Children lists are
// re-sorted under the new ords. Nodes detached by Remove drop out of the
// registry since the gather starts from the root. The pass is O(n log n).
func (r *Root) Renumber() {
	nodes := r.node.gatherDescendants(nil)
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].key < nodes[j].key })
	for i, n := range nodes {
		n.ord = i + 1
		n.key = float64(i + 1)
	}
	r.descendants = nodes
	sortChildrenDeep(r.node)
}

func sortChildrenDeep(n *Node) {
	sort.Slice(n.children, func(i, j int) bool { return n.children[i].ord < n.children[j].ord })
	for _, child := range n.children {
		sortChildrenDeep(child)
	}
}

// Validate checks the sentence's structural invariants and returns nil when
// they all hold. It verifies that the registry and ord sequence agree
// (ords are exactly 1..n in registry order), that parent and children links
// are mutually consistent and sorted, that every reachable node is
// registered, and that no node is its own ancestor.
//
// SetParent, CreateChild, Remove and the Shift family maintain these
// invariants; Validate exists as a guard for tests and for code that
// reaches into the tree in unusual ways.
func (r *Root) Validate() error {
	if r.node.ord != 0 {
		return fmt.Errorf("%w: root has ord %d", ErrOrdOutOfSync, r.node.ord)
	}
	registered := make(map[*Node]bool, len(r.descendants)+1)
	registered[r.node] = true
	for i, n := range r.descendants {
		if n.ord != i+1 {
			return fmt.Errorf("%w: registry position %d holds ord %d", ErrOrdOutOfSync, i, n.ord)
		}
		registered[n] = true
	}

	reachable := 0
	var walk func(n *Node) error
	walk = func(n *Node) error {
		for i, child := range n.children {
			if child.parent != n {
				return fmt.Errorf("%w: node %s", ErrParentMismatch, child)
			}
			if i > 0 && n.children[i-1].ord >= child.ord {
				return fmt.Errorf("%w: under node %s", ErrChildrenOrder, n)
			}
			if !registered[child] {
				return fmt.Errorf("%w: %s", ErrUnregisteredNode, child)
			}
			reachable++
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(r.node); err != nil {
		return err
	}
	if reachable != len(r.descendants) {
		return fmt.Errorf("%w: %d registered, %d reachable", ErrOrdOutOfSync, len(r.descendants), reachable)
	}

	limit := len(r.descendants) + 1
	for _, n := range r.descendants {
		steps := 0
		for climber := n.parent; climber != nil; climber = climber.parent {
			if climber == n || steps > limit {
				return fmt.Errorf("%w: %s", ErrCycleDetected, n)
			}
			steps++
		}
	}
	return nil
}
