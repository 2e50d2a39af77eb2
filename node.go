// SPDX-License-Identifier: MIT
package treeparser

import "fmt"

type (
	// Node is a sample parent-linked entity.
	//
	// Its methods satisfy the accessors of every operation through method expressions, i.e.
	// (*Node[K]).ID for idOf.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	Node[K comparable] struct {
		id K

		// parentID is nil for root nodes.
		parentID *K

		level int

		// children holds references to nodes at a lower level, populated by ListToTree.
		children []*Node[K]
	}
)

// NewNode instantiates a [Node].
func NewNode[K comparable](id K, parentID *K, level int) *Node[K] {
	return &Node[K]{
		id:       id,
		parentID: parentID,
		level:    level,
	}
}

// ID retrieves the [Node]'s identifier.
func (n *Node[K]) ID() K { return n.id }

// ParentID retrieves a reference to the [Node]'s parent identifier.
//
// Value is nil for the root node.
func (n *Node[K]) ParentID() *K { return n.parentID }

// Level retrieves the [Node]'s level.
func (n *Node[K]) Level() int { return n.level }

// Children retrieves the [Node]'s immediate children.
func (n *Node[K]) Children() []*Node[K] { return n.children }

// SetChildren for a [Node].
func (n *Node[K]) SetChildren(children []*Node[K]) { n.children = children }

func (n *Node[K]) String() string { return fmt.Sprint(n.id) }
