// SPDX-License-Identifier: MIT
package treeparser

import (
	"reflect"
	"testing"
)

func TestGetLeafNodes(t *testing.T) {
	roots := listToTree(menu(), nil)

	tests := []struct {
		name string
		root *Node[int]
		want []int
	}{
		{name: "tree", root: roots[0], want: []int{4, 3}},
		{name: "single node", root: NewNode(1, nil, 0), want: []int{1}},
		{name: "nil root", root: nil, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(GetLeafNodes(tt.root, (*Node[int]).Children)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetLeafNodes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetLevelNodes(t *testing.T) {
	roots := listToTree(menu(), nil)

	// Levels are read, not computed: 4 claims level -1.
	skewed := listToTree([]*Node[int]{
		NewNode(1, nil, 0),
		NewNode(2, ref(1), 1),
		NewNode(4, ref(2), -1),
		NewNode(3, ref(1), 2),
	}, nil)

	tests := []struct {
		name  string
		root  *Node[int]
		level int
		want  []int
	}{
		{name: "root level", root: roots[0], level: 0, want: []int{1}},
		{name: "first level", root: roots[0], level: 1, want: []int{2, 3}},
		{name: "second level", root: roots[0], level: 2, want: []int{4}},
		{name: "missing level", root: roots[0], level: 3, want: []int{}},
		{name: "single node", root: NewNode(1, nil, 0), level: 0, want: []int{1}},
		{name: "caller levels", root: skewed[0], level: 1, want: []int{2, 4}},
		{name: "caller levels deeper", root: skewed[0], level: 2, want: []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetLevelNodes(tt.root, tt.level, (*Node[int]).Level, (*Node[int]).Children)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("GetLevelNodes() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestGetLevelNodes_signedLevelTypes(t *testing.T) {
	type category struct {
		depth    int8
		children []*category
	}

	leaf := &category{depth: -2}
	root := &category{children: []*category{{depth: 1, children: []*category{leaf}}}}

	got := GetLevelNodes(root, int8(2),
		func(c *category) int8 { return c.depth },
		func(c *category) []*category { return c.children })
	if len(got) != 1 || got[0] != leaf {
		t.Errorf("GetLevelNodes() = %v, want [%p]", got, leaf)
	}
}

func Test_walkAndApply(t *testing.T) {
	roots := listToTree(menu(), nil)

	// A nil child is skipped along with its absent subtree.
	withNil := NewNode(1, nil, 0)
	withNil.SetChildren([]*Node[int]{nil, NewNode(2, ref(1), 1)})

	type visit struct{ id, depth int }

	tests := []struct {
		name  string
		root  *Node[int]
		depth int
		want  []visit
	}{
		{
			name: "pre-order depths",
			root: roots[0],
			want: []visit{{1, 0}, {2, 1}, {4, 2}, {3, 1}},
		},
		{
			name:  "offset depth",
			root:  roots[0].Children()[0],
			depth: 5,
			want:  []visit{{2, 5}, {4, 6}},
		},
		{
			name: "nil child",
			root: withNil,
			want: []visit{{1, 0}, {2, 1}},
		},
		{
			name: "nil root",
			root: nil,
			want: []visit{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]visit, 0)
			walkAndApply(tt.root, tt.depth, func(node *Node[int], depth int) {
				got = append(got, visit{node.ID(), depth})
			}, (*Node[int]).Children)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("walkAndApply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_isAbsent(t *testing.T) {
	var (
		node  *Node[int]
		iface interface{}
		m     map[string]int
	)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "nil pointer", got: isAbsent(node), want: true},
		{name: "nil interface", got: isAbsent(iface), want: true},
		{name: "nil map", got: isAbsent(m), want: true},
		{name: "pointer", got: isAbsent(NewNode(1, nil, 0)), want: false},
		{name: "zero int", got: isAbsent(0), want: false},
		{name: "zero struct", got: isAbsent(struct{}{}), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("isAbsent() = %v, want %v", tt.got, tt.want)
			}
		})
	}
}
