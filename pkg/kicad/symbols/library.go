package symbols

import (
	"fmt"
	"io"
	"os"

	"github.com/tracemodular/trace-eurorack/pkg/kicad/sexp"
)

// Symbol is one symbol definition from a .kicad_sym library file.
type Symbol struct {
	Name        string // symbol name without the library prefix
	Extends     string // base symbol name for derived symbols, or ""
	Description string
	Pins        []Pin
}

// Pin is a pin definition within a library symbol.
type Pin struct {
	Number string
	Name   string
	Type   string // KiCad electrical type: input, output, passive, ...
	Hidden bool
}

// Library is a parsed .kicad_sym file.
type Library struct {
	Name    string
	Symbols []Symbol
	byName  map[string]int
}

// Lookup returns the named symbol with derived-symbol inheritance applied:
// a symbol that extends another takes its pins and, when absent, its
// description from the base.
func (l *Library) Lookup(name string) (Symbol, bool) {
	idx, ok := l.byName[name]
	if !ok {
		return Symbol{}, false
	}
	sym := l.Symbols[idx]
	for depth := 0; sym.Extends != "" && len(sym.Pins) == 0 && depth < 8; depth++ {
		baseIdx, ok := l.byName[sym.Extends]
		if !ok {
			break
		}
		base := l.Symbols[baseIdx]
		sym.Pins = base.Pins
		if sym.Description == "" {
			sym.Description = base.Description
		}
		sym.Extends = base.Extends
	}
	return sym, true
}

// ParseLibraryFile reads a .kicad_sym file.
func ParseLibraryFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbol library: %w", err)
	}
	defer f.Close()
	return ParseLibrary(f)
}

// ParseLibrary reads a symbol library from r.
func ParseLibrary(r io.Reader) (*Library, error) {
	nodes, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse s-expression: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty symbol library")
	}
	root, ok := nodes[0].(*sexp.List)
	if !ok || root.Name() != "kicad_symbol_library" {
		return nil, fmt.Errorf("not a KiCad symbol library: expected 'kicad_symbol_library'")
	}

	lib := &Library{byName: make(map[string]int)}
	for _, symNode := range sexp.FindAllNodes(root, "symbol") {
		sym := parseSymbol(symNode)
		lib.byName[sym.Name] = len(lib.Symbols)
		lib.Symbols = append(lib.Symbols, sym)
	}
	return lib, nil
}

func parseSymbol(node *sexp.List) Symbol {
	sym := Symbol{}
	sym.Name, _ = sexp.GetString(node, 1)

	if ext, found := sexp.FindNode(node, "extends"); found {
		sym.Extends, _ = sexp.GetString(ext, 1)
	}

	for _, prop := range sexp.FindAllNodes(node, "property") {
		key, _ := sexp.GetString(prop, 1)
		// KiCad 7 renamed ki_description to Description
		if key == "Description" || key == "ki_description" {
			sym.Description, _ = sexp.GetString(prop, 2)
		}
	}

	// Pins hang off nested unit symbols: (symbol "R_0_1" (pin ...) ...)
	for _, unit := range sexp.FindAllNodes(node, "symbol") {
		for _, pinNode := range sexp.FindAllNodes(unit, "pin") {
			sym.Pins = append(sym.Pins, parsePin(pinNode))
		}
	}
	return sym
}

func parsePin(node *sexp.List) Pin {
	pin := Pin{}
	pin.Type, _ = sexp.GetString(node, 1)
	if name, found := sexp.FindNode(node, "name"); found {
		pin.Name, _ = sexp.GetString(name, 1)
	}
	if num, found := sexp.FindNode(node, "number"); found {
		pin.Number, _ = sexp.GetString(num, 1)
	}
	// KiCad 8 writes (hide yes), earlier versions a bare hide symbol
	if hide, found := sexp.FindNode(node, "hide"); found {
		val, _ := sexp.GetString(hide, 1)
		pin.Hidden = val == "yes"
	} else {
		for _, item := range node.Items() {
			if s, ok := item.(sexp.Symbol); ok && string(s) == "hide" {
				pin.Hidden = true
				break
			}
		}
	}
	return pin
}
