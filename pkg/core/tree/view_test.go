package tree

import (
	"fmt"
	"testing"
)

func TestNodeViewFilter(t *testing.T) {
	// head(3) with children at ords 1, 2, 4, 5.
	r := NewRoot()
	c1 := r.CreateChild(Attrs{Form: "c1"})
	c2 := r.CreateChild(Attrs{Form: "c2"})
	head := r.CreateChild(Attrs{Form: "head"})
	c4 := r.CreateChild(Attrs{Form: "c4"})
	c5 := r.CreateChild(Attrs{Form: "c5"})
	for _, c := range []*Node{c1, c2, c4, c5} {
		if err := c.SetParent(head); err != nil {
			t.Fatalf("SetParent: %v", err)
		}
	}

	tests := []struct {
		name string
		opts FilterOptions
		want []*Node
	}{
		{
			name: "Plain",
			opts: FilterOptions{},
			want: []*Node{c1, c2, c4, c5},
		},
		{
			name: "AddSelf",
			opts: FilterOptions{AddSelf: true},
			want: []*Node{c1, c2, head, c4, c5},
		},
		{
			name: "FollowingOnly",
			opts: FilterOptions{FollowingOnly: true},
			want: []*Node{c4, c5},
		},
		{
			name: "PrecedingOnly",
			opts: FilterOptions{PrecedingOnly: true},
			want: []*Node{c1, c2},
		},
		{
			name: "PrecedingWithSelf",
			opts: FilterOptions{PrecedingOnly: true, AddSelf: true},
			want: []*Node{c1, c2, head},
		},
		{
			name: "FollowingWithSelf",
			opts: FilterOptions{FollowingOnly: true, AddSelf: true},
			want: []*Node{head, c4, c5},
		},
		{
			name: "BothDirectionsComposeToSelf",
			opts: FilterOptions{PrecedingOnly: true, FollowingOnly: true, AddSelf: true},
			want: []*Node{head},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := head.Children().Filter(tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%+v) returned %d nodes, want %d", tt.opts, len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%+v)[%d] = %s, want %s", tt.opts, i, got[i].Form, tt.want[i].Form)
				}
			}
		})
	}
}

func TestNodeViewFilterSorted(t *testing.T) {
	// AddSelf on a following-only view must still come out ord-sorted even
	// though the origin is appended last.
	r := NewRoot()
	head := r.CreateChild(Attrs{Form: "head"})
	late := r.CreateChild(Attrs{Form: "late"})
	if err := late.SetParent(head); err != nil {
		t.Fatalf("SetParent: %v", err)
	}

	got := head.Children().Filter(FilterOptions{AddSelf: true})
	if got[0] != head || got[1] != late {
		t.Errorf("Filter order = %v, want [head late]", got)
	}
}

func TestNodeViewAccessors(t *testing.T) {
	_, nodes := buildFlat(t, "a", "b")
	v := nodes[0].Children()
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
	if v.Origin() != nodes[0] {
		t.Error("Origin() is not the anchoring node")
	}

	if err := nodes[1].SetParent(nodes[0]); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
	v = nodes[0].Children()
	if got := fmt.Sprint(v.Nodes()); v.Len() != 1 || v.Nodes()[0] != nodes[1] {
		t.Errorf("Nodes() = %s, want [b]", got)
	}
}
