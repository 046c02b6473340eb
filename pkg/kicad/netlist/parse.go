package netlist

import (
	"fmt"
	"io"
	"os"

	"github.com/tracemodular/trace-eurorack/pkg/kicad/sexp"
)

// ParseFile reads a netlist file back in.
func ParseFile(path string) (*Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open netlist: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a KiCad netlist document from r.
func Parse(r io.Reader) (*Netlist, error) {
	nodes, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse s-expression: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty netlist document")
	}

	root, ok := nodes[0].(*sexp.List)
	if !ok || root.Name() != "export" {
		return nil, fmt.Errorf("not a KiCad netlist: expected (export ...), got %q", nodes[0].String())
	}

	nl := &Netlist{}
	parseDesign(root, nl)

	if comps, found := sexp.FindNode(root, "components"); found {
		for _, comp := range sexp.FindAllNodes(comps, "comp") {
			nl.Components = append(nl.Components, parseComponent(comp))
		}
	}

	if libparts, found := sexp.FindNode(root, "libparts"); found {
		for _, lp := range sexp.FindAllNodes(libparts, "libpart") {
			nl.LibParts = append(nl.LibParts, parseLibPart(lp))
		}
	}

	if libs, found := sexp.FindNode(root, "libraries"); found {
		for _, lib := range sexp.FindAllNodes(libs, "library") {
			nl.Libraries = append(nl.Libraries, Library{
				Logical: sexp.ChildString(lib, "logical"),
				URI:     sexp.ChildString(lib, "uri"),
			})
		}
	}

	if nets, found := sexp.FindNode(root, "nets"); found {
		for _, net := range sexp.FindAllNodes(nets, "net") {
			nl.Nets = append(nl.Nets, parseNet(net))
		}
	}

	return nl, nil
}

func parseDesign(root *sexp.List, nl *Netlist) {
	design, found := sexp.FindNode(root, "design")
	if !found {
		return
	}
	nl.Design.Source = sexp.ChildString(design, "source")
	nl.Design.Date = sexp.ChildString(design, "date")
	nl.Design.Tool = sexp.ChildString(design, "tool")

	sheet, found := sexp.FindNode(design, "sheet")
	if !found {
		return
	}
	if num, err := sexp.GetInt(mustChild(sheet, "number"), 1); err == nil {
		nl.Design.Sheet.Number = num
	}
	nl.Design.Sheet.Name = sexp.ChildString(sheet, "name")
	nl.Design.Sheet.Tstamps = sexp.ChildString(sheet, "tstamps")

	if tb, found := sexp.FindNode(sheet, "title_block"); found {
		nl.Design.Sheet.TitleBlock.Title = sexp.ChildString(tb, "title")
		nl.Design.Sheet.TitleBlock.Company = sexp.ChildString(tb, "company")
		nl.Design.Sheet.TitleBlock.Revision = sexp.ChildString(tb, "rev")
		nl.Design.Sheet.TitleBlock.Date = sexp.ChildString(tb, "date")
		for _, comment := range sexp.FindAllNodes(tb, "comment") {
			nl.Design.Sheet.TitleBlock.Comments = append(
				nl.Design.Sheet.TitleBlock.Comments, sexp.ChildString(comment, "value"))
		}
	}
}

func parseComponent(comp *sexp.List) Component {
	c := Component{
		Ref:       sexp.ChildString(comp, "ref"),
		Value:     sexp.ChildString(comp, "value"),
		Footprint: sexp.ChildString(comp, "footprint"),
		Tstamps:   sexp.ChildString(comp, "tstamps"),
	}
	if libsource, found := sexp.FindNode(comp, "libsource"); found {
		c.Lib = sexp.ChildString(libsource, "lib")
		c.Part = sexp.ChildString(libsource, "part")
		c.Description = sexp.ChildString(libsource, "description")
	}
	if sheetpath, found := sexp.FindNode(comp, "sheetpath"); found {
		c.SheetName = sexp.ChildString(sheetpath, "names")
		c.SheetTstamps = sexp.ChildString(sheetpath, "tstamps")
	}
	for _, prop := range sexp.FindAllNodes(comp, "property") {
		c.Properties = append(c.Properties, Property{
			Name:  sexp.ChildString(prop, "name"),
			Value: sexp.ChildString(prop, "value"),
		})
	}
	return c
}

func parseLibPart(lp *sexp.List) LibPart {
	part := LibPart{
		Lib:         sexp.ChildString(lp, "lib"),
		Part:        sexp.ChildString(lp, "part"),
		Description: sexp.ChildString(lp, "description"),
	}
	if pins, found := sexp.FindNode(lp, "pins"); found {
		for _, pin := range sexp.FindAllNodes(pins, "pin") {
			part.Pins = append(part.Pins, LibPin{
				Num:  sexp.ChildString(pin, "num"),
				Name: sexp.ChildString(pin, "name"),
				Type: sexp.ChildString(pin, "type"),
			})
		}
	}
	return part
}

func parseNet(net *sexp.List) Net {
	n := Net{Name: sexp.ChildString(net, "name")}
	if code, found := sexp.FindNode(net, "code"); found {
		if v, err := sexp.GetInt(code, 1); err == nil {
			n.Code = v
		}
	}
	for _, node := range sexp.FindAllNodes(net, "node") {
		n.Nodes = append(n.Nodes, Node{
			Ref:         sexp.ChildString(node, "ref"),
			Pin:         sexp.ChildString(node, "pin"),
			PinFunction: sexp.ChildString(node, "pinfunction"),
			PinType:     sexp.ChildString(node, "pintype"),
		})
	}
	return n
}

func mustChild(s sexp.Node, key string) *sexp.List {
	node, found := sexp.FindNode(s, key)
	if !found {
		return sexp.NewList()
	}
	return node
}
