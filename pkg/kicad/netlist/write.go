package netlist

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tracemodular/trace-eurorack/pkg/kicad/sexp"
)

// Write emits the netlist as a KiCad s-expression document.
func (n *Netlist) Write(w io.Writer) error {
	return sexp.Write(w, n.toNode())
}

// WriteFile emits the netlist to a file, creating or truncating it.
func (n *Netlist) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create netlist file: %w", err)
	}
	if err := n.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write netlist: %w", err)
	}
	return f.Close()
}

func (n *Netlist) toNode() *sexp.List {
	root := sexp.NewList(sexp.Symbol("export"),
		sexp.NewList(sexp.Symbol("version"), sexp.Str(FormatVersion)))

	root.Append(n.designNode())
	root.Append(n.componentsNode())
	root.Append(n.libpartsNode())
	root.Append(n.librariesNode())
	root.Append(n.netsNode())
	return root
}

func (n *Netlist) designNode() *sexp.List {
	sheet := sexp.NewList(sexp.Symbol("sheet"),
		field("number", strconv.Itoa(n.Design.Sheet.Number)),
		field("name", n.Design.Sheet.Name),
		field("tstamps", n.Design.Sheet.Tstamps))

	tb := n.Design.Sheet.TitleBlock
	block := sexp.NewList(sexp.Symbol("title_block"),
		field("title", tb.Title),
		field("company", tb.Company),
		field("rev", tb.Revision),
		field("date", tb.Date))
	for i, comment := range tb.Comments {
		block.Append(sexp.NewList(sexp.Symbol("comment"),
			field("number", strconv.Itoa(i+1)),
			field("value", comment)))
	}
	sheet.Append(block)

	return sexp.NewList(sexp.Symbol("design"),
		field("source", n.Design.Source),
		field("date", n.Design.Date),
		field("tool", n.Design.Tool),
		sheet)
}

func (n *Netlist) componentsNode() *sexp.List {
	comps := sexp.NewList(sexp.Symbol("components"))
	for _, c := range n.Components {
		comp := sexp.NewList(sexp.Symbol("comp"),
			field("ref", c.Ref),
			field("value", c.Value))
		if c.Footprint != "" {
			comp.Append(field("footprint", c.Footprint))
		}
		if c.Description != "" {
			comp.Append(field("description", c.Description))
		}
		comp.Append(sexp.NewList(sexp.Symbol("libsource"),
			field("lib", c.Lib),
			field("part", c.Part),
			field("description", c.Description)))
		for _, prop := range c.Properties {
			comp.Append(sexp.NewList(sexp.Symbol("property"),
				field("name", prop.Name),
				field("value", prop.Value)))
		}
		comp.Append(sexp.NewList(sexp.Symbol("sheetpath"),
			field("names", c.SheetName),
			field("tstamps", c.SheetTstamps)))
		comp.Append(field("tstamps", c.Tstamps))
		comps.Append(comp)
	}
	return comps
}

func (n *Netlist) libpartsNode() *sexp.List {
	libparts := sexp.NewList(sexp.Symbol("libparts"))
	for _, lp := range n.LibParts {
		node := sexp.NewList(sexp.Symbol("libpart"),
			field("lib", lp.Lib),
			field("part", lp.Part))
		if lp.Description != "" {
			node.Append(field("description", lp.Description))
		}
		if len(lp.Pins) > 0 {
			pins := sexp.NewList(sexp.Symbol("pins"))
			for _, pin := range lp.Pins {
				pins.Append(sexp.NewList(sexp.Symbol("pin"),
					field("num", pin.Num),
					field("name", pin.Name),
					field("type", pin.Type)))
			}
			node.Append(pins)
		}
		libparts.Append(node)
	}
	return libparts
}

func (n *Netlist) librariesNode() *sexp.List {
	libs := sexp.NewList(sexp.Symbol("libraries"))
	for _, lib := range n.Libraries {
		libs.Append(sexp.NewList(sexp.Symbol("library"),
			field("logical", lib.Logical),
			field("uri", lib.URI)))
	}
	return libs
}

func (n *Netlist) netsNode() *sexp.List {
	nets := sexp.NewList(sexp.Symbol("nets"))
	for _, net := range n.Nets {
		node := sexp.NewList(sexp.Symbol("net"),
			field("code", strconv.Itoa(net.Code)),
			field("name", net.Name))
		for _, nd := range net.Nodes {
			pin := sexp.NewList(sexp.Symbol("node"),
				field("ref", nd.Ref),
				field("pin", nd.Pin))
			if nd.PinFunction != "" {
				pin.Append(field("pinfunction", nd.PinFunction))
			}
			pin.Append(field("pintype", nd.PinType))
			node.Append(pin)
		}
		nets.Append(node)
	}
	return nets
}

func field(name, value string) *sexp.List {
	return sexp.NewList(sexp.Symbol(name), sexp.Str(value))
}
