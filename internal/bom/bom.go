// Package bom derives a bill of materials from a circuit. Parts collapse
// into one line item when their normalized value, footprint and library
// symbol all match, so 4.7uF and 4700nF capacitors group together.
package bom

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
	"github.com/tracemodular/trace-eurorack/pkg/units"
)

// Line is one BOM line item.
type Line struct {
	Refs      []string // reference designators, sorted
	Quantity  int
	Value     string // display value (the first raw spelling seen)
	Footprint string
	LibID     string
}

// Build groups the circuit's parts into BOM lines. Lines are ordered by
// first reference designator for stable output.
type key struct {
	value     string
	footprint string
	libID     string
}

// Build derives the BOM for a circuit.
func Build(c *circuit.Circuit) []Line {
	groups := make(map[key]*Line)
	var order []key

	for _, part := range c.Parts() {
		k := key{
			value:     normalize(part.Value()),
			footprint: part.Footprint(),
			libID:     part.Def().LibID(),
		}
		line, ok := groups[k]
		if !ok {
			line = &Line{
				Value:     part.Value(),
				Footprint: part.Footprint(),
				LibID:     part.Def().LibID(),
			}
			groups[k] = line
			order = append(order, k)
		}
		line.Refs = append(line.Refs, part.Ref())
		line.Quantity++
	}

	lines := make([]Line, 0, len(order))
	for _, k := range order {
		line := groups[k]
		sort.Slice(line.Refs, func(i, j int) bool { return refLess(line.Refs[i], line.Refs[j]) })
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return refLess(lines[i].Refs[0], lines[j].Refs[0])
	})
	return lines
}

// normalize canonicalizes engineering values; anything else (part numbers,
// connector names) groups by its literal spelling.
func normalize(value string) string {
	v, err := units.Parse(value)
	if err != nil {
		return value
	}
	return v.Canonical()
}

// refLess orders references the way humans expect: C2 before C10, C9
// before D1.
func refLess(a, b string) bool {
	pa, na := splitRef(a)
	pb, nb := splitRef(b)
	if pa != pb {
		return pa < pb
	}
	return na < nb
}

func splitRef(ref string) (string, int) {
	i := len(ref)
	for i > 0 && ref[i-1] >= '0' && ref[i-1] <= '9' {
		i--
	}
	n, _ := strconv.Atoi(ref[i:])
	return ref[:i], n
}

// WriteCSV emits the BOM in CSV form.
func WriteCSV(w io.Writer, lines []Line) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Refs", "Qty", "Value", "Footprint", "Symbol"}); err != nil {
		return fmt.Errorf("write BOM header: %w", err)
	}
	for _, line := range lines {
		record := []string{
			strings.Join(line.Refs, " "),
			strconv.Itoa(line.Quantity),
			line.Value,
			line.Footprint,
			line.LibID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write BOM line: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
