// Package checks applies structural and annotation consistency rules to
// finished dependency trees.
//
// The checker is a read-mostly client of the tree API: it never mutates the
// structure, only upserts short bug codes into each offending node's misc
// field under the key "Bug" (comma-appended when a node trips several rules)
// and counts findings in an explicit [Report]. A checking pass never aborts
// on a finding, so one run over a whole corpus reports everything.
//
// The rule set follows the Universal Dependencies v2 release checklist:
// relation chains (aux-chain, ...), headedness (conj-rightheaded, ...),
// relation/part-of-speech combinations (cop-upos, ...), required
// morphological features (no-PronType, ...), and per-head argument
// uniqueness (multi-subj, multi-obj). Rules are configurable through
// [Config], loadable from TOML.
package checks
