// SPDX-License-Identifier: MIT
package treeparser

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/fisherprime/treeparser/lexer"
)

// Deserialization errors.
var (
	ErrInvalidHierarchySrc     = errors.New("invalid hierarchy source")
	ErrEmptyDeserializationSrc = errors.New("empty deserialization source")
	ErrExcessiveValues         = errors.New("the deserialization source has excessive values")
	ErrExcessiveEndMarkers     = errors.New("the deserialization source has excessive end markers")
)

// Deserialize transforms a serialized forest into a flat, pre-order list of [Node]s.
//
// Nodes carry their parent id & their depth as level, their children are left unset for
// ListToTree:
//
//	nodes, err := Deserialize(ctx, lexer.WithSource(strings.NewReader("1,2))")))
//	roots := ListToTree(nodes, nil, (*Node[string]).ParentID, (*Node[string]).ID, (*Node[string]).SetChildren)
func Deserialize(ctx context.Context, opts ...lexer.Option) (nodes []*Node[string], err error) {
	defer func() {
		if err != nil {
			nodes = nil
			err = fmt.Errorf("%w: %w", ErrInvalidHierarchySrc, err)
		}
	}()

	// Cancelled on return to release the lexer.
	lexCtx, lexCancel := context.WithCancel(ctx)
	defer lexCancel()

	l := lexer.New(opts...)
	go l.Lex(lexCtx)

	nodes = make([]*Node[string], 0)

	// open holds the nodes awaiting their end marker.
	var open []*Node[string]
	excessEnds := 0

lex:
	for {
		item, proceed := l.Item()
		if !proceed {
			// Closed without an ItemEOF on context cancellation.
			if err = ctx.Err(); err == nil {
				err = context.Canceled
			}

			return
		}

		switch item.ID {
		case lexer.ItemEOF:
			break lex
		case lexer.ItemError:
			// Stop input processing.
			err = item.Err
			return
		case lexer.ItemSplitter:
			continue
		case lexer.ItemEndMarker:
			if len(open) < 1 {
				excessEnds++
				continue
			}
			open = open[:len(open)-1]
		case lexer.ItemValue:
			var parentID *string
			if len(open) > 0 {
				id := open[len(open)-1].ID()
				parentID = &id
			}

			node := NewNode(string(item.Val), parentID, len(open))
			nodes = append(nodes, node)
			open = append(open, node)
		}
	}

	if defConfig.Debug {
		defConfig.Logger.Debugf("deserialized %d values, %d end markers", l.ValueCounter(), l.EndCounter())
	}

	switch {
	case len(nodes) < 1 && excessEnds < 1:
		err = ErrEmptyDeserializationSrc
	case excessEnds > 0:
		err = fmt.Errorf("%w: %s +%d", ErrExcessiveEndMarkers, string(l.EndMarker()), excessEnds)
	case len(open) > 0:
		err = fmt.Errorf("%w: +%d", ErrExcessiveValues, len(open))
	default:
		// Valid
	}

	return
}
