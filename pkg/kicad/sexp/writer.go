package sexp

import (
	"io"
	"strings"
)

// maxInlineWidth is the column budget for keeping a list on one line.
const maxInlineWidth = 100

// Write serializes a node with KiCad-style indentation and a trailing
// newline. Lists that hold only atoms and fit the line budget stay inline;
// anything larger breaks each list child onto its own indented line while
// leading atoms stay on the head line.
func Write(w io.Writer, node Node) error {
	var sb strings.Builder
	writeNode(&sb, node, 0)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Format serializes a node to a string, without the trailing newline.
func Format(node Node) string {
	var sb strings.Builder
	writeNode(&sb, node, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node, depth int) {
	list, ok := node.(*List)
	if !ok {
		sb.WriteString(node.String())
		return
	}

	if inline(list, depth) {
		sb.WriteString(list.String())
		return
	}

	sb.WriteByte('(')

	// Leading atoms stay on the head line: (net "GND" ...
	i := 0
	for ; i < len(list.items); i++ {
		if !list.items[i].IsLeaf() {
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(list.items[i].String())
	}

	indent := strings.Repeat("  ", depth+1)
	for ; i < len(list.items); i++ {
		sb.WriteByte('\n')
		sb.WriteString(indent)
		writeNode(sb, list.items[i], depth+1)
	}

	sb.WriteByte(')')
}

// inline reports whether a list should be kept on a single line.
func inline(l *List, depth int) bool {
	for _, item := range l.items {
		if sub, ok := item.(*List); ok {
			for _, inner := range sub.Items() {
				if !inner.IsLeaf() {
					return false
				}
			}
		}
	}
	return depth*2+len(l.String()) <= maxInlineWidth
}
