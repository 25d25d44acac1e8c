package tree

import "strings"

// The MISC column is a "Key=Value" side channel joined by "|", e.g.
// "SpaceAfter=No|Bug=cop-upos". It is kept as raw text so unknown entries
// round-trip byte-faithfully; these helpers do keyed access on top.

// MiscValue returns the value stored under key in the node's misc field,
// or "" when the key is absent.
func (n *Node) MiscValue(key string) string {
	if n.Misc == "" || n.Misc == "_" {
		return ""
	}
	for _, entry := range strings.Split(n.Misc, "|") {
		if k, v, ok := strings.Cut(entry, "="); ok && k == key {
			return v
		}
	}
	return ""
}

// SetMiscValue upserts key=value into the node's misc field, preserving the
// order of existing entries. An empty value removes the key.
func (n *Node) SetMiscValue(key, value string) {
	var entries []string
	if n.Misc != "" && n.Misc != "_" {
		entries = strings.Split(n.Misc, "|")
	}
	replaced := false
	out := entries[:0]
	for _, entry := range entries {
		if k, _, ok := strings.Cut(entry, "="); ok && k == key {
			if value != "" && !replaced {
				out = append(out, key+"="+value)
				replaced = true
			}
			continue
		}
		out = append(out, entry)
	}
	if value != "" && !replaced {
		out = append(out, key+"="+value)
	}
	n.Misc = strings.Join(out, "|")
}

// AppendMiscValue appends value to the entry stored under key, comma
// separated, creating the entry when absent. Used for accumulating
// annotations such as Bug codes.
func (n *Node) AppendMiscValue(key, value string) {
	if cur := n.MiscValue(key); cur != "" {
		n.SetMiscValue(key, cur+","+value)
		return
	}
	n.SetMiscValue(key, value)
}
