package tree

// MWT is a multi-word token: a single surface unit spanning a contiguous run
// of syntactic words, e.g. Spanish "dámelo" covering "da", "me", "lo".
//
// An MWT does not own its words. The sentence root keeps the token registry,
// and each covered word carries the token's id as a back-reference resolved
// through that registry.
type MWT struct {
	Form string // Surface form of the whole token
	Misc string // MISC column of the token line

	id    int
	words []*Node
}

// Words returns the syntactic words the token spans, in word order.
// The returned slice should not be modified.
func (m *MWT) Words() []*Node { return m.words }

// OrdRange returns the first and last ord covered by the token.
func (m *MWT) OrdRange() (first, last int) {
	if len(m.words) == 0 {
		return 0, 0
	}
	return m.words[0].ord, m.words[len(m.words)-1].ord
}

// AddMWT registers a multi-word token spanning the given words and links
// each word back to it. Words already covered by another token are relinked
// to the new one.
func (r *Root) AddMWT(words []*Node, form, misc string) *MWT {
	m := &MWT{Form: form, Misc: misc, id: len(r.mwts) + 1, words: words}
	r.mwts = append(r.mwts, m)
	for _, w := range words {
		w.mwt = m.id
	}
	return m
}

// MWTs returns all multi-word tokens of the sentence in registration order.
// The returned slice should not be modified.
func (r *Root) MWTs() []*MWT { return r.mwts }

// MultiwordToken returns the multi-word token this node is part of, or nil.
// The back-reference is an id resolved against the sentence's token
// registry, so it survives serialization round-trips.
func (n *Node) MultiwordToken() *MWT {
	if n.mwt == 0 {
		return nil
	}
	r := n.Root()
	if r == nil || n.mwt > len(r.mwts) {
		return nil
	}
	return r.mwts[n.mwt-1]
}
