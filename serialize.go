// SPDX-License-Identifier: MIT
package treeparser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitlab.com/fisherprime/treeparser/lexer"
)

type (
	// SerializeOption defines the Serialize functional option type.
	SerializeOption func(*serializeOpts)

	serializeOpts struct {
		endMarker rune
		splitter  rune
	}

	// serialFrame is a pending Serialize step; close frames emit an end marker.
	serialFrame[T any] struct {
		node  T
		close bool
	}
)

// Serialization errors.
var (
	ErrInvalidValue = errors.New("value is not serializable")
)

// WithSerializeEndMarker configures the end marker; it should match the lexer's.
func WithSerializeEndMarker(r rune) SerializeOption {
	return func(o *serializeOpts) { o.endMarker = r }
}

// WithSerializeSplitter configures the value splitter; it should match the lexer's.
func WithSerializeSplitter(r rune) SerializeOption {
	return func(o *serializeOpts) { o.splitter = r }
}

// Serialize transforms a forest into a string.
//
// Every node is written as its id, its children then an end marker; values are separated by the
// splitter, i.e. "1,2,4)),3))" for a root 1 with the children 2 & 3, 2 having the child 4. Trees
// of a forest follow each other.
//
// Ids are formatted with fmt.Sprint & must consist of letters, digits, '_' or '-'.
func Serialize[T any, K comparable](
	ctx context.Context,
	roots []T,
	idOf func(T) K,
	childrenOf func(T) []T,
	opts ...SerializeOption,
) (output string, err error) {
	o := serializeOpts{endMarker: lexer.DefaultEndMarker, splitter: lexer.DefaultSplitter}
	for _, opt := range opts {
		opt(&o)
	}

	stack := make([]serialFrame[T], 0, len(roots))
	for index := len(roots) - 1; index >= 0; index-- {
		stack = append(stack, serialFrame[T]{node: roots[index]})
	}

	var (
		buffer strings.Builder
		top    serialFrame[T]
	)
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		top, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if top.close {
			buffer.WriteRune(o.endMarker)
			continue
		}
		if isAbsent(top.node) {
			continue
		}

		value := fmt.Sprint(idOf(top.node))
		if err = o.validate(value); err != nil {
			return
		}

		if buffer.Len() > 0 {
			buffer.WriteRune(o.splitter)
		}
		buffer.WriteString(value)

		stack = append(stack, serialFrame[T]{node: top.node, close: true})

		children := childrenOf(top.node)
		for index := len(children) - 1; index >= 0; index-- {
			stack = append(stack, serialFrame[T]{node: children[index]})
		}
	}

	output = buffer.String()

	return
}

// validate ensures value lexes back as a single value.
func (o *serializeOpts) validate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty", ErrInvalidValue)
	}

	for _, r := range value {
		if r == o.endMarker || r == o.splitter || !lexer.IsValue(r) {
			return fmt.Errorf("%w: %q has %q", ErrInvalidValue, value, r)
		}
	}

	return nil
}
