package tree

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/udtree/pkg/core/feats"
)

var (
	// ErrSelfParent is returned by [Node.SetParent] when a node is assigned
	// as its own parent.
	ErrSelfParent = errors.New("node cannot be its own parent")

	// ErrCycle is returned by [Node.SetParent] when the assignment would make
	// the node an ancestor of itself. The tree is left unmodified.
	ErrCycle = errors.New("parent assignment would create a cycle")

	// ErrNilParent is returned by [Node.SetParent] when the candidate parent
	// is nil. Detaching a node is done with [Node.Remove], not by clearing
	// its parent.
	ErrNilParent = errors.New("parent must not be nil")

	// ErrUnknownAttr is returned by [Node.GetAttrs] for an attribute name
	// that does not exist.
	ErrUnknownAttr = errors.New("unknown attribute")
)

// Node is a single token (syntactic word) in a dependency tree.
//
// Every node except the technical root has exactly one parent, and a node's
// children are always kept sorted by word order. All structural changes go
// through methods (SetParent, CreateChild, Remove, the Shift family) so the
// tree invariants hold after every successful mutation. Scalar annotation
// fields are plain exported fields with no validation beyond their type.
//
// Node identity is pointer identity: two nodes are the same node only if they
// are the same pointer. Node is not safe for concurrent mutation.
type Node struct {
	Form   string // Word form or punctuation symbol
	Lemma  string // Lemma of the word form
	Upos   string // Universal part-of-speech tag
	Xpos   string // Language-specific part-of-speech tag
	Deprel string // Dependency relation to the parent
	Misc   string // Auxiliary annotation in CoNLL-U MISC column form

	ord int     // Word-order index, 1-based; 0 for the technical root
	key float64 // Fractional order key consumed by Root.Renumber

	fs       *feats.Feats
	rawDeps  string // Enhanced dependencies in CoNLL-U column form
	deps     []Dep  // Deserialized enhanced dependencies; nil when stale
	parent   *Node
	children []*Node
	mwt      int   // 1-based id into the root's token registry; 0 = none
	tree     *Root // Set on the technical root node only
}

func newNode() *Node {
	return &Node{fs: feats.New(), rawDeps: RawDepsEmpty}
}

// Attrs carries the optional annotation fields for node construction.
// Zero-valued fields are left unset. Feats and Deps take the CoNLL-U column
// serialization of the respective field.
type Attrs struct {
	Form   string
	Lemma  string
	Upos   string
	Xpos   string
	Deprel string
	Misc   string
	Feats  string
	Deps   string
}

func (n *Node) apply(a Attrs) {
	n.Form = a.Form
	n.Lemma = a.Lemma
	n.Upos = a.Upos
	n.Xpos = a.Xpos
	n.Deprel = a.Deprel
	n.Misc = a.Misc
	if a.Feats != "" {
		n.fs.SetString(a.Feats)
	}
	if a.Deps != "" {
		n.SetRawDeps(a.Deps)
	}
}

// String returns a short diagnostic rendering of the node.
func (n *Node) String() string {
	parentOrd := -1
	if n.parent != nil {
		parentOrd = n.parent.ord
	}
	return fmt.Sprintf("<%d, %s, %d, %s>", n.ord, n.Form, parentOrd, n.Deprel)
}

// Ord returns the node's word-order index. Indices are 1-based and unique
// within a sentence; the technical root has ord 0.
func (n *Node) Ord() int { return n.ord }

// Feats returns the node's morphological features.
// The returned value is the node's own feature set, not a copy.
func (n *Node) Feats() *feats.Feats { return n.fs }

// SetFeats replaces the node's morphological features with f.
// A nil f resets the features to an empty set.
func (n *Node) SetFeats(f *feats.Feats) {
	if f == nil {
		f = feats.New()
	}
	n.fs = f
}

// SetFeatsString replaces the node's morphological features with the parse
// of the given CoNLL-U serialization.
func (n *Node) SetFeatsString(s string) { n.fs.SetString(s) }

// Parent returns the node's dependency parent, or nil for the technical root.
func (n *Node) Parent() *Node { return n.parent }

// SetParent makes newParent the node's dependency parent.
//
// The call is a no-op if newParent is already the parent. It fails with
// ErrSelfParent when the node is assigned to itself, and with ErrCycle when
// the node is an ancestor of newParent. Rejection is atomic: on error the
// tree is left exactly as it was, with no partial detach.
//
// On success the node is removed from its old parent's children (if any) and
// inserted into newParent's children at the position given by its ord.
// The cycle check walks newParent's ancestor chain, so it is O(depth).
func (n *Node) SetParent(newParent *Node) error {
	if newParent == nil {
		return ErrNilParent
	}
	if n.parent == newParent {
		return nil
	}
	if n == newParent {
		return fmt.Errorf("%w: %s", ErrSelfParent, n)
	}

	for climber := newParent; climber != nil; climber = climber.parent {
		if climber == n {
			return fmt.Errorf("%w: %s", ErrCycle, n)
		}
	}

	if n.parent != nil {
		n.parent.detachChild(n)
	}
	n.parent = newParent
	newParent.attachChild(n)
	return nil
}

// detachChild removes c from n's children. Membership is pointer identity.
func (n *Node) detachChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// attachChild inserts c into n's children keeping the ord ordering.
func (n *Node) attachChild(c *Node) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].ord > c.ord })
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

// Children returns a view over the node's direct dependents, sorted by ord.
func (n *Node) Children() NodeView {
	return NodeView{nodes: n.children, origin: n}
}

// Root returns the sentence root that owns this node's tree, found by
// walking parent links. It returns nil for a node detached with Remove.
func (n *Node) Root() *Root {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur.tree
}

// Descendants returns a view over the node's whole subtree (excluding the
// node itself), sorted by ord. The subtree is gathered depth-first and then
// ordered, so the result reflects linear word order, not tree shape.
func (n *Node) Descendants() NodeView {
	nodes := n.gatherDescendants(nil)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ord < nodes[j].ord })
	return NodeView{nodes: nodes, origin: n}
}

func (n *Node) gatherDescendants(acc []*Node) []*Node {
	for _, child := range n.children {
		acc = append(acc, child)
		acc = child.gatherDescendants(acc)
	}
	return acc
}

// IsDescendantOf reports whether candidate is an ancestor of this node.
func (n *Node) IsDescendantOf(candidate *Node) bool {
	for climber := n.parent; climber != nil; climber = climber.parent {
		if climber == candidate {
			return true
		}
	}
	return false
}

// CreateChild creates a new node with the given attributes, registers it in
// the sentence and attaches it as a child of this node. The new node always
// receives the next unused ord (append-only growth); use the Shift family to
// place it elsewhere afterwards.
func (n *Node) CreateChild(a Attrs) *Node {
	child := newNode()
	child.apply(a)

	r := n.Root()
	child.ord = len(r.descendants) + 1
	child.key = float64(child.ord)
	r.descendants = append(r.descendants, child)

	child.parent = n
	n.attachChild(child)
	return child
}

// Remove detaches the node from its parent and renumbers the sentence.
//
// Descendants are not reattached: they stay linked to the removed node and
// drop out of the sentence registry with it. Callers that want to keep a
// removed node's children must reparent them first. After Remove the node's
// Root method returns nil.
func (n *Node) Remove() {
	r := n.Root()
	if n.parent != nil {
		n.parent.detachChild(n)
		n.parent = nil
	}
	if r != nil {
		r.Renumber()
	}
}

// IsRoot reports whether the node is the technical sentence root (ord 0).
func (n *Node) IsRoot() bool { return n.tree != nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Precedes reports whether the node comes before other in linear word order.
func (n *Node) Precedes(other *Node) bool { return n.ord < other.ord }

// PrevNode returns the node immediately preceding this one in word order.
// The node at ord 1 is preceded by the technical root; the root itself has
// no predecessor and yields nil.
func (n *Node) PrevNode() *Node {
	if n.ord <= 0 {
		return nil
	}
	r := n.Root()
	if r == nil {
		return nil
	}
	if n.ord == 1 {
		return r.node
	}
	return r.descendants[n.ord-2]
}

// NextNode returns the node immediately following this one in word order,
// or nil if this is the last node of the sentence.
func (n *Node) NextNode() *Node {
	r := n.Root()
	if r == nil || n.ord >= len(r.descendants) {
		return nil
	}
	return r.descendants[n.ord]
}

// GetAttrs returns the values of the named attributes in order, substituting
// undef for values that are unset. Recognized names are ord, form, lemma,
// upos, xpos, deprel, misc, feats and deps; feats and deps yield their
// CoNLL-U serialization. An unrecognized name returns ErrUnknownAttr.
func (n *Node) GetAttrs(names []string, undef string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		var v string
		switch name {
		case "ord":
			v = strconv.Itoa(n.ord)
		case "form":
			v = n.Form
		case "lemma":
			v = n.Lemma
		case "upos":
			v = n.Upos
		case "xpos":
			v = n.Xpos
		case "deprel":
			v = n.Deprel
		case "misc":
			v = n.Misc
		case "feats":
			v = n.fs.String()
		case "deps":
			v = n.RawDeps()
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, name)
		}
		if v == "" {
			v = undef
		}
		values = append(values, v)
	}
	return values, nil
}

// ComputeSentence returns the surface text of this node's subtree.
//
// Forms are concatenated in word order with a single space after each node
// unless its misc field carries SpaceAfter=No. Called on the sentence root
// the result covers the whole sentence without the root's own (empty) form;
// called on an ordinary node the node itself is included.
func (n *Node) ComputeSentence() string {
	nodes := n.Descendants().Filter(FilterOptions{AddSelf: !n.IsRoot()})
	var b strings.Builder
	for _, node := range nodes {
		b.WriteString(node.Form)
		if node.MiscValue("SpaceAfter") != "No" {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Address returns the document-wide coordinate of the node in the form
// "<root-address>#<ord>", e.g. "s123/en#4".
func (n *Node) Address() string {
	if r := n.Root(); r != nil {
		return fmt.Sprintf("%s#%d", r.Address(), n.ord)
	}
	return fmt.Sprintf("#%d", n.ord)
}
