// Package sexp provides S-expression reading and writing for KiCad files.
// The reader streams, so arbitrarily large symbol libraries can be parsed
// without loading them into memory first. The writer produces the
// indentation style KiCad's own tools emit, so generated netlists diff
// cleanly against files written by eeschema.
package sexp

import (
	"io"
	"strings"
)

// Node is an S-expression node: either an atom or a list.
type Node interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// String returns the serialized representation
	String() string
}

// Symbol is an unquoted atom (identifier, keyword, number).
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// Str is a quoted string atom. KiCad quotes all user-supplied values,
// even when they contain no whitespace.
type Str string

func (s Str) IsLeaf() bool   { return true }
func (s Str) String() string { return `"` + escapeString(string(s)) + `"` }

// List is an ordered sequence of nodes. The first element is conventionally
// a Symbol naming the list ("net", "comp", "pin", ...).
type List struct {
	items []Node
}

// NewList builds a list from the given nodes.
func NewList(items ...Node) *List {
	return &List{items: items}
}

func (l *List) IsLeaf() bool { return false }

// Len returns the number of elements in the list.
func (l *List) Len() int { return len(l.items) }

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Node {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// Items returns the list elements.
func (l *List) Items() []Node { return l.items }

// Append adds nodes to the end of the list and returns the list
// so construction can be chained.
func (l *List) Append(items ...Node) *List {
	l.items = append(l.items, items...)
	return l
}

// Name returns the leading symbol of the list, or "" when the list is
// empty or starts with something other than a symbol.
func (l *List) Name() string {
	if len(l.items) == 0 {
		return ""
	}
	if sym, ok := l.items[0].(Symbol); ok {
		return string(sym)
	}
	return ""
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range l.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Node, error) {
	return newParser(r).parseAll()
}

// ParseString reads all top-level S-expressions from a string.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}

func escapeString(s string) string {
	var sb strings.Builder
	for _, ch := range s {
		switch ch {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
