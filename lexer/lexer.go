// SPDX-License-Identifier: MIT

// Package lexer tokenizes serialized trees: identifiers separated by a splitter, with an end
// marker closing every node.
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func(context.Context) NextOperation

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer defines a type to capture identifiers from a rune source.
	Lexer struct {
		debug     bool
		endMarker rune
		splitter  rune
		logger    logrus.FieldLogger

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input source.
		source io.RuneReader
		// sourceErr holds the first non io.EOF source error.
		sourceErr error

		// buffer is a slice of runes being lexed.
		buffer []rune
		// bufferIndex is the current buffer position.
		//
		// When this value reaches the length of buffer, the buffer is populated from the source.
		bufferIndex int

		valueCounter int
		endCounter   int
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)
)

const (
	// DefaultEndMarker a rune indicating the end of a node's children.
	DefaultEndMarker = ')'

	// DefaultSplitter is the rune separating serialized values.
	DefaultSplitter = ','

	sourceLimit   = 512
	defBufferSize = 10
)

// Lexing errors.
var (
	ErrUnknownTokens = errors.New("unknown tokens")
	ErrReadSource    = errors.New("failed to read source")
)

// Lookup tables for the ASCII range, cheaper than chained comparisons.
var (
	whitespace = [utf8.RuneSelf]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	alphaSymbols = [utf8.RuneSelf]bool{
		'_': true,
		'-': true,
	}
)

// New creates a new Lexer, reading from an empty source unless configured otherwise.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		endMarker: DefaultEndMarker,
		splitter:  DefaultSplitter,
		logger:    logrus.New(),

		c: make(chan Item, defBufferSize),

		buffer: make([]rune, 0, defBufferSize),
		source: strings.NewReader(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithEndMarker configures the endMarker option.
func WithEndMarker(r rune) Option { return func(l *Lexer) { l.endMarker = r } }

// WithSplitter configures the splitter option.
func WithSplitter(r rune) Option { return func(l *Lexer) { l.splitter = r } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source io.RuneReader) Option { return func(l *Lexer) { l.source = source } }

// EndMarker obtains the configured end marker.
func (l *Lexer) EndMarker() rune { return l.endMarker }

// Splitter obtains the configured value splitter.
func (l *Lexer) Splitter() rune { return l.splitter }

// ValueCounter obtains the number of lexed values.
func (l *Lexer) ValueCounter() int { return l.valueCounter }

// EndCounter obtains the number of lexed end markers.
func (l *Lexer) EndCounter() int { return l.endCounter }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex lexes the input by executing state functions, closing the Item channel on return.
//
// The counters are safe to read once the channel is closed.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	for state := NextOperation(l.lexWhitespace); state != nil; {
		select {
		case <-ctx.Done():
			// Received context cancellation, the consumer reads ctx.Err().
			return
		default:
			state = state(ctx)
		}
	}
}

// Item return a lexed Item from the input.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

// lexWhitespace discards whitespace & dispatches on the following rune.
func (l *Lexer) lexWhitespace(ctx context.Context) NextOperation {
	l.acceptWhile(isWhitespace)
	// Ignore white spaces, discard instead of emit.
	l.discard()

	r, ok := l.next()
	switch {
	case !ok:
		if l.sourceErr != nil {
			l.emit(ctx, Item{ID: ItemError, Err: fmt.Errorf("%w: %v", ErrReadSource, l.sourceErr)})
			return nil
		}

		l.emit(ctx, Item{ID: ItemEOF})
		return nil
	case r == l.endMarker:
		l.endCounter++
		return l.emitToken(ctx, ItemEndMarker)
	case r == l.splitter:
		return l.emitToken(ctx, ItemSplitter)
	case IsValue(r):
		return l.lexValue
	default:
		l.backup()
		l.emit(ctx, Item{ID: ItemError, Err: fmt.Errorf("%w: %s", ErrUnknownTokens, l.remainder())})

		return nil
	}
}

// lexValue consumes an identifier.
func (l *Lexer) lexValue(ctx context.Context) NextOperation {
	l.acceptWhile(IsValue)
	l.valueCounter++

	return l.emitToken(ctx, ItemValue)
}

// emitToken sends the buffered runes as an Item of type id.
func (l *Lexer) emitToken(ctx context.Context, id ItemID) NextOperation {
	val := []byte(string(l.buffer[:l.bufferIndex]))
	l.discard()

	if l.debug {
		l.logger.Debugf("lexer emit %s: %s", id, val)
	}

	if !l.emit(ctx, Item{ID: id, Val: val}) {
		return nil
	}

	return l.lexWhitespace
}

// emit sends an Item over the communication channel, failing on context cancellation.
func (l *Lexer) emit(ctx context.Context, item Item) bool {
	select {
	case <-ctx.Done():
		return false
	case l.c <- item:
		return true
	}
}

// next returns the next rune in the input; ok is false at the end of the source.
func (l *Lexer) next() (r rune, ok bool) {
	if l.bufferIndex >= len(l.buffer) && l.fill() < 1 {
		return
	}

	r, ok = l.buffer[l.bufferIndex], true
	l.bufferIndex++

	return
}

// backup steps back one rune.
func (l *Lexer) backup() {
	if l.bufferIndex > 0 {
		l.bufferIndex--
	}
}

// discard the buffer content before the current buffer index.
func (l *Lexer) discard() {
	l.buffer = l.buffer[l.bufferIndex:]
	l.bufferIndex = 0
}

// acceptWhile consumes runes while fn holds, leaving the first failing rune unread.
func (l *Lexer) acceptWhile(fn ValidationFunction) {
	for {
		r, ok := l.next()
		if !ok {
			return
		}

		if !fn(r) {
			l.backup()
			return
		}
	}
}

// fill sources up to defBufferSize runes into the buffer.
func (l *Lexer) fill() (sourced int) {
	for ; sourced < defBufferSize; sourced++ {
		r, _, err := l.source.ReadRune()
		if err == nil {
			l.buffer = append(l.buffer, r)
			continue
		}

		if !errors.Is(err, io.EOF) && l.sourceErr == nil {
			l.sourceErr = err
		}

		break
	}

	return
}

// remainder returns up to sourceLimit unread runes, for error messages.
func (l *Lexer) remainder() string {
	for len(l.buffer)-l.bufferIndex < sourceLimit {
		if l.fill() < 1 {
			break
		}
	}

	rest := l.buffer[l.bufferIndex:]
	if len(rest) > sourceLimit {
		rest = rest[:sourceLimit]
	}

	return string(rest)
}

// IsValue reports whether r may appear in a lexed value: letters, digits, '_' & '-'.
func IsValue(r rune) bool { return isAlpha(r) || isNumeric(r) }

// isWhitespace return true for whitespace, newline & carrier return.
func isWhitespace(r rune) bool { return r < utf8.RuneSelf && whitespace[r] }

// isAlpha return true for an alphabetic sequence.
func isAlpha(r rune) bool {
	return (r < utf8.RuneSelf && alphaSymbols[r]) || unicode.IsLetter(r)
}

// isNumeric return true for a real number.
func isNumeric(r rune) bool { return unicode.IsDigit(r) }
