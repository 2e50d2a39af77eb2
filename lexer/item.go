// SPDX-License-Identifier: MIT
package lexer

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding the token type, value & error of a lexed rune sequence.
	Item struct {
		Err error
		Val []byte // The value of this Item
		ID  ItemID // The type of this Item
	}
)

const (
	_             = iota // Consume 0 to start actual numbering at 1.
	ItemError            // Notify occurrence of an `error`.
	ItemSplitter         // References the splitter, ','.
	ItemEOF              // End of the source.
	ItemValue            // Node identifier.
	ItemEndMarker        // References the end marker, ')'.
)

func (i ItemID) String() string {
	switch i {
	case ItemError:
		return "error"
	case ItemSplitter:
		return "splitter"
	case ItemEOF:
		return "eof"
	case ItemValue:
		return "value"
	case ItemEndMarker:
		return "end marker"
	default:
		return "unknown"
	}
}
