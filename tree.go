// SPDX-License-Identifier: MIT
package treeparser

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// ListToTree assembles a flat list of entities into trees, returning the roots.
//
// Entities are grouped by parent id, keeping their input order within a group. Every entity then
// receives the group of entities naming it as their parent through setChildren; entities nobody
// names as a parent receive nil. Roots are the entities whose parent id matches defaultParentID:
// a nil defaultParentID matches nil parent ids, otherwise the values are compared.
//
// Entities whose parent is neither present nor the defaultParentID are reachable from no root
// and are dropped from the result.
func ListToTree[T any, K comparable](
	entities []T,
	defaultParentID *K,
	parentOf func(T) *K,
	idOf func(T) K,
	setChildren func(T, []T),
) (roots []T) {
	groups := make(map[K][]T)
	for _, entity := range entities {
		parentID := parentOf(entity)
		if parentID == nil {
			// Root candidates are never anybody's children.
			continue
		}

		groups[*parentID] = append(groups[*parentID], entity)
	}

	// Children are attached to every entity before filtering for roots.
	for _, entity := range entities {
		setChildren(entity, groups[idOf(entity)])
	}

	roots = make([]T, 0)
	for _, entity := range entities {
		if sameParent(parentOf(entity), defaultParentID) {
			roots = append(roots, entity)
		}
	}

	// Skip expensive operation if not debug.
	if cfg := defConfig; cfg.Debug {
		cfg.Logger.WithFields(logrus.Fields{
			"entities": len(entities),
			"groups":   len(groups),
			"roots":    len(roots),
		}).Debug("list to tree")

		if orphans := orphansOf(entities, defaultParentID, parentOf, idOf); len(orphans) > 0 {
			cfg.Logger.Debugf("orphaned entities: %s", spew.Sprint(orphans))
		}
	}

	return
}

// sameParent compares parent ids; nil only matches nil.
func sameParent[K comparable](a, b *K) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// orphansOf lists the ids of entities whose parent is neither present nor the default parent.
func orphansOf[T any, K comparable](entities []T, defaultParentID *K, parentOf func(T) *K, idOf func(T) K) (orphans []K) {
	present := make(map[K]struct{}, len(entities))
	for _, entity := range entities {
		present[idOf(entity)] = struct{}{}
	}

	for _, entity := range entities {
		parentID := parentOf(entity)
		if sameParent(parentID, defaultParentID) {
			continue
		}
		if parentID == nil {
			orphans = append(orphans, idOf(entity))
			continue
		}
		if _, ok := present[*parentID]; !ok {
			orphans = append(orphans, idOf(entity))
		}
	}

	return
}
