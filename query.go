// SPDX-License-Identifier: MIT
package treeparser

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

type (
	// visitor receives every walked node with its distance from the walk's origin.
	visitor[T any] func(node T, depth int)

	// frame is a pending walkAndApply node.
	frame[T any] struct {
		node  T
		depth int
	}
)

// GetLevelNodes collects the nodes of a tree whose level, ignoring its sign, equals level.
//
// Levels are read through levelOf & never computed; callers are responsible for keeping them
// consistent with the tree's shape. Nodes are returned in pre-order.
func GetLevelNodes[T any, L constraints.Signed](root T, level L, levelOf func(T) L, childrenOf func(T) []T) (nodes []T) {
	nodes = make([]T, 0)

	walkAndApply(root, 0, func(node T, _ int) {
		if abs(levelOf(node)) == level {
			nodes = append(nodes, node)
		}
	}, childrenOf)

	return
}

// GetLeafNodes collects the nodes of a tree having nil or empty children, in pre-order.
//
// A root without children is its own only leaf.
func GetLeafNodes[T any](root T, childrenOf func(T) []T) (nodes []T) {
	nodes = make([]T, 0)

	walkAndApply(root, 0, func(node T, _ int) {
		if len(childrenOf(node)) < 1 {
			nodes = append(nodes, node)
		}
	}, childrenOf)

	return
}

// walkAndApply performs a pre-order walk from node, calling visit on every node before its
// children.
//
// Absent nodes are skipped, the depth grows by one per level below node.
func walkAndApply[T any](node T, depth int, visit visitor[T], childrenOf func(T) []T) {
	stack := []frame[T]{{node: node, depth: depth}}

	var top frame[T]
	for len(stack) > 0 {
		top, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if isAbsent(top.node) {
			continue
		}

		visit(top.node, top.depth)

		children := childrenOf(top.node)
		for index := len(children) - 1; index >= 0; index-- {
			stack = append(stack, frame[T]{node: children[index], depth: top.depth + 1})
		}
	}
}

// isAbsent reports whether value is nil.
func isAbsent[T any](value T) bool {
	rv := reflect.ValueOf(any(value))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func abs[L constraints.Signed](value L) L {
	if value < 0 {
		return -value
	}

	return value
}
