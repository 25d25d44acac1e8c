package tree

// subtreeSpread is the divisor for the sub-position offsets of a moved
// subtree. Every moved node lands strictly between two integer positions at
// target ± 0.5, offset by (node.ord - self.ord) / subtreeSpread to preserve
// the subtree's internal order. The fixed divisor bounds how many nodes can
// be moved in one call before offsets collide; see the package
// documentation.
const subtreeSpread = 100000.0

// ShiftBeforeNode moves this node and its whole subtree immediately before
// reference in word order, then renumbers the sentence.
func (n *Node) ShiftBeforeNode(reference *Node) {
	n.shift(reference, false, true, false)
}

// ShiftAfterNode moves this node and its whole subtree immediately after
// reference in word order, then renumbers the sentence.
func (n *Node) ShiftAfterNode(reference *Node) {
	n.shift(reference, true, true, false)
}

// ShiftBeforeSubtree moves this node before everything in the subtree rooted
// at reference, then renumbers the sentence. With withoutChildren the node
// moves alone, leaving its own subtree in place; otherwise the subtree moves
// with it.
func (n *Node) ShiftBeforeSubtree(reference *Node, withoutChildren bool) {
	n.shift(reference, false, !withoutChildren, true)
}

// ShiftAfterSubtree moves this node after everything in the subtree rooted
// at reference, then renumbers the sentence. With withoutChildren the node
// moves alone, leaving its own subtree in place; otherwise the subtree moves
// with it.
func (n *Node) ShiftAfterSubtree(reference *Node, withoutChildren bool) {
	n.shift(reference, true, !withoutChildren, true)
}

// shift assigns fractional order keys to the moved nodes and triggers the
// root's renumbering pass, which turns the keys back into consecutive ords.
//
// The anchor ordinal starts at reference.Ord; with referenceSubtree it is
// pushed to the extreme ord of reference's subtree in the move direction
// (ignoring this node itself, which may sit inside that subtree). Each moved
// node gets key anchor ± 0.5 + (ord - self.ord)/subtreeSpread, placing the
// whole group strictly between two unmoved integer positions.
func (n *Node) shift(reference *Node, after, moveSubtree, referenceSubtree bool) {
	nodesToMove := []*Node{n}
	if moveSubtree {
		nodesToMove = append(nodesToMove, n.Descendants().Nodes()...)
	}

	referenceOrd := reference.ord
	if referenceSubtree {
		for _, d := range reference.Descendants().Nodes() {
			if d == n {
				continue
			}
			if (after && d.ord > referenceOrd) || (!after && d.ord < referenceOrd) {
				referenceOrd = d.ord
			}
		}
	}

	delta := -0.5
	if after {
		delta = 0.5
	}
	for _, moved := range nodesToMove {
		moved.key = float64(referenceOrd) + delta + float64(moved.ord-n.ord)/subtreeSpread
	}

	n.Root().Renumber()
}
