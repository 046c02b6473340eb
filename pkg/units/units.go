// Package units parses component values written in engineering notation
// ("10uF", "4k7", "0R22", "1MEG") into a numeric quantity and unit. BOM
// grouping uses it so 4.7uF and 4700nF land in the same line item.
package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Value is a parsed component value.
type Value struct {
	Raw      string  // the original string
	Quantity float64 // value scaled to the base unit
	Unit     string  // canonical unit: "F", "H", "R", "V", "A", "W", "Hz" or ""
}

// valueLexer tokenizes engineering notation. RKM infix values like 4k7
// arrive as Number Letters Number.
var valueLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Letters", Pattern: `[a-zA-ZµΩ]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// rawValue is the grammar: a number, an optional letter run, and for RKM
// notation an optional fractional number after the letters.
type rawValue struct {
	Whole string `parser:"@Number"`
	Tail  string `parser:"@Letters?"`
	Frac  string `parser:"@Number?"`
}

var valueParser = participle.MustBuild[rawValue](
	participle.Lexer(valueLexer),
	participle.Elide("Whitespace"),
)

// multipliers maps engineering suffixes to scale factors. Matching is
// case-sensitive except where noted because m (milli) and M (mega) differ.
var multipliers = []struct {
	symbol string
	factor float64
}{
	{"MEG", 1e6}, // SPICE-style mega, checked before single letters
	{"p", 1e-12},
	{"n", 1e-9},
	{"u", 1e-6},
	{"µ", 1e-6},
	{"m", 1e-3},
	{"k", 1e3},
	{"K", 1e3},
	{"M", 1e6},
	{"G", 1e9},
	{"R", 1}, // RKM decimal marker for ohms: 0R22
}

// canonical unit spellings
var units = map[string]string{
	"F":   "F",
	"H":   "H",
	"R":   "R",
	"Ω":   "R",
	"ohm": "R",
	"Ohm": "R",
	"OHM": "R",
	"V":   "V",
	"A":   "A",
	"W":   "W",
	"Hz":  "Hz",
	"hz":  "Hz",
}

// Parse parses a component value. Values that are not engineering notation
// (part numbers, connector names) return an error; callers treat those as
// opaque strings.
func Parse(s string) (Value, error) {
	raw, err := valueParser.ParseString("", s)
	if err != nil {
		return Value{}, fmt.Errorf("not an engineering value %q: %w", s, err)
	}

	factor, unit, err := splitTail(raw.Tail)
	if err != nil {
		return Value{}, fmt.Errorf("value %q: %w", s, err)
	}

	var number float64
	if raw.Frac != "" {
		// RKM infix: the letter run is the decimal marker ("4k7").
		if strings.Contains(raw.Whole, ".") {
			return Value{}, fmt.Errorf("value %q mixes decimal point with RKM notation", s)
		}
		number, err = strconv.ParseFloat(raw.Whole+"."+raw.Frac, 64)
		if err != nil {
			return Value{}, fmt.Errorf("value %q: %w", s, err)
		}
	} else {
		number, err = strconv.ParseFloat(raw.Whole, 64)
		if err != nil {
			return Value{}, fmt.Errorf("value %q: %w", s, err)
		}
	}

	return Value{Raw: s, Quantity: number * factor, Unit: unit}, nil
}

// splitTail decomposes a letter run into multiplier and unit: "uF" is
// micro+farad, "k" is kilo alone, "F" is farad alone.
func splitTail(tail string) (float64, string, error) {
	if tail == "" {
		return 1, "", nil
	}
	if unit, ok := units[tail]; ok {
		// R doubles as the RKM ohm marker and is handled below so 10R
		// keeps factor 1; all other exact units have no multiplier.
		return 1, unit, nil
	}
	for _, m := range multipliers {
		rest, found := strings.CutPrefix(tail, m.symbol)
		if !found {
			continue
		}
		if rest == "" {
			unit := ""
			if m.symbol == "R" {
				unit = "R"
			}
			return m.factor, unit, nil
		}
		if unit, ok := units[rest]; ok {
			return m.factor, unit, nil
		}
	}
	return 0, "", fmt.Errorf("unrecognized suffix %q", tail)
}

// engineering rungs for formatting, largest first
var rungs = []struct {
	factor float64
	prefix string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "u"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// Canonical renders the value in normalized engineering notation, so any
// two equivalent spellings produce identical strings ("4700nF" -> "4.7uF").
func (v Value) Canonical() string {
	if v.Quantity == 0 {
		return "0" + v.Unit
	}
	for _, r := range rungs {
		if v.Quantity >= r.factor {
			scaled := v.Quantity / r.factor
			return trimZeros(strconv.FormatFloat(scaled, 'f', 3, 64)) + r.prefix + v.Unit
		}
	}
	return trimZeros(strconv.FormatFloat(v.Quantity/1e-12, 'f', 3, 64)) + "p" + v.Unit
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
