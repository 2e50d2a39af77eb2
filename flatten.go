// SPDX-License-Identifier: MIT
package treeparser

// TreeListToList flattens a forest in pre-order: each root, then its flattened subtree, before
// the next root.
//
// Nil & empty children end the descent. A cyclic forest never terminates.
func TreeListToList[T any](roots []T, childrenOf func(T) []T) (list []T) {
	list = make([]T, 0, len(roots))

	// Pending siblings are pushed in reverse to pop in order.
	stack := make([]T, 0, len(roots))
	for index := len(roots) - 1; index >= 0; index-- {
		stack = append(stack, roots[index])
	}

	var top T
	for len(stack) > 0 {
		top, stack = stack[len(stack)-1], stack[:len(stack)-1]
		list = append(list, top)

		children := childrenOf(top)
		for index := len(children) - 1; index >= 0; index-- {
			stack = append(stack, children[index])
		}
	}

	return
}

// SingleTreeToList flattens a single tree in pre-order, root first.
func SingleTreeToList[T any](root T, childrenOf func(T) []T) (list []T) {
	list = []T{root}
	if children := childrenOf(root); len(children) > 0 {
		list = append(list, TreeListToList(children, childrenOf)...)
	}

	return
}
