// Package tree implements sentences annotated as Universal Dependencies
// trees: one node per syntactic word, edges labeled with a dependency
// relation, and a single linear word order shared by the whole sentence.
//
// # Structure
//
// A sentence is owned by a [Root], whose technical root node (ord 0) anchors
// the tree and whose registry indexes every node by ord. All structural
// edits go through [Node] methods, and each successful mutation leaves the
// global invariants intact:
//
//   - no node is ever its own ancestor (SetParent rejects cycles atomically)
//   - every non-root node has exactly one parent
//   - children lists are sorted by ord, and the sentence's ords are exactly
//     0..n with no gaps or duplicates
//
// # Reordering
//
// The Shift family repositions a node (optionally with its subtree) next to
// a reference node or its subtree. Instead of renumbering on every edit,
// shifts assign fractional order keys strictly between two integer
// positions and then run one [Root.Renumber] pass that re-sorts all nodes
// and reassigns consecutive ords. Moved subtree members are spread by a
// fixed divisor (1e5), which keeps their relative order but bounds how many
// nodes a single shift can carry before sub-offsets collide; sentences are
// far below that bound in practice.
//
// # Enhanced dependencies
//
// Each node carries a secondary edge set in two forms: the raw CoNLL-U
// column string and a structured []Dep resolved against the sentence
// registry. Whichever form was written last is authoritative; the other is
// derived lazily on access and cached until the next write. See
// [Node.RawDeps] and [Node.Deps].
//
// # Concurrency
//
// Trees are single-writer. Concurrent mutation is unsafe; concurrent
// read-only access is safe only strictly between mutations, because views
// and the dependency cache are rebuilt synchronously inside mutating calls.
package tree
