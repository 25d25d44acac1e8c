package checks

import (
	"strings"

	"github.com/matzehuels/udtree/pkg/core/tree"
)

// bugKey is the misc key findings are recorded under.
const bugKey = "Bug"

// Checker applies a configured rule set to sentences.
// A single Checker can be reused across sentences and is safe for
// sequential use; create one per goroutine for parallel corpora.
type Checker struct {
	cfg      Config
	disabled map[string]bool
}

// New creates a Checker for the given configuration.
func New(cfg Config) *Checker {
	disabled := make(map[string]bool, len(cfg.Disable))
	for _, code := range cfg.Disable {
		disabled[code] = true
	}
	return &Checker{cfg: cfg, disabled: disabled}
}

// Check runs all enabled rules over every node of the sentence, recording
// findings into rep. Each finding also annotates the offending node's misc
// field with its bug code. Check never fails; problems are data, not errors.
func (c *Checker) Check(root *tree.Root, rep *Report) {
	for _, n := range root.Nodes() {
		c.checkNode(n, rep)
	}
}

func (c *Checker) checkNode(n *tree.Node, rep *Report) {
	deprel, upos, fs := n.Deprel, n.Upos, n.Feats()
	parent := n.Parent()

	for _, dep := range c.cfg.NoChain {
		if deprel == dep && parent.Deprel == dep {
			c.flag(rep, n, dep+"-chain", dep+" dependencies should not form a chain")
		}
	}

	for _, dep := range c.cfg.LeftHeaded {
		if deprel == dep && n.Precedes(parent) {
			c.flag(rep, n, dep+"-rightheaded", dep+" relations should be left-headed, not right")
		}
	}

	if deprel == "cop" && !oneOf(upos, "AUX", "PRON") {
		c.flag(rep, n, "cop-upos", "deprel=cop upos!=AUX|PRON (but "+upos+")")
	}
	if deprel == "mark" && upos == "PRON" {
		c.flag(rep, n, "mark-upos", "deprel=mark upos=PRON")
	}
	if deprel == "det" && !oneOf(upos, "DET", "PRON") {
		c.flag(rep, n, "det-upos", "deprel=det upos!=DET|PRON (but "+upos+")")
	}
	if deprel == "punct" && upos != "PUNCT" {
		c.flag(rep, n, "punct-upos", "deprel=punct upos!=PUNCT (but "+upos+")")
	}

	for requiredUpos, feature := range c.cfg.RequiredFeature {
		if upos == requiredUpos && !fs.Has(feature) {
			c.flag(rep, n, "no-"+feature, "upos="+upos+" but "+feature+" feature is missing")
		}
	}

	if fs.Get("VerbForm") == "Fin" {
		if !oneOf(upos, "VERB", "AUX") {
			c.flag(rep, n, "finverb-upos", "VerbForm=Fin upos!=VERB|AUX (but "+upos+")")
		}
		if !fs.Has("Mood") {
			c.flag(rep, n, "finverb-mood", "VerbForm=Fin but Mood feature is missing")
		}
	}

	if fs.Has("Degree") && !oneOf(upos, "ADJ", "ADV") {
		c.flag(rep, n, "degree-upos", "Degree="+fs.Get("Degree")+" upos!=ADJ|ADV (but "+upos+")")
	}

	subjects := 0
	objects := 0
	for _, child := range n.Children().Nodes() {
		if strings.Contains(child.Deprel, "subj") {
			subjects++
		}
		if oneOf(child.Deprel, "obj", "ccomp") {
			objects++
		}
	}
	if subjects > 1 {
		c.flag(rep, n, "multi-subj", "more than one [nc]subj(:pass)? child")
	}
	if objects > 1 {
		c.flag(rep, n, "multi-obj", "more than one obj|ccomp child")
	}

	if parent.Upos == "ADP" && !oneOf(deprel, "conj", "cc", "punct", "fixed") {
		c.flag(rep, n, "adp-child", "parent.upos=ADP deprel!=conj|cc|punct|fixed")
	}
	if parent.Deprel == "punct" {
		c.flag(rep, n, "punct-child", "parent.deprel=punct")
	}
}

// flag records one finding: a Bug code on the node and an entry in the
// report. Disabled codes are dropped silently.
func (c *Checker) flag(rep *Report, n *tree.Node, code, message string) {
	if c.disabled[code] {
		return
	}
	n.AppendMiscValue(bugKey, code)
	rep.Add(Finding{Address: n.Address(), Code: code, Message: message})
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
