// Package netlist models KiCad netlist files (the "(export (version "E"))"
// format) and generates them from circuits. The emitted files are what the
// PCB editor's "Import Netlist" dialog consumes.
package netlist

// FormatVersion is the netlist format revision emitted by KiCad 6 and later.
const FormatVersion = "E"

// Netlist is a complete netlist document.
type Netlist struct {
	Design     Design
	Components []Component
	LibParts   []LibPart
	Libraries  []Library
	Nets       []Net
}

// Design carries the provenance header.
type Design struct {
	Source string // originating design, the circuit name here
	Date   string
	Tool   string
	Sheet  Sheet
}

// Sheet describes the (single) schematic sheet of the design.
type Sheet struct {
	Number     int
	Name       string
	Tstamps    string
	TitleBlock TitleBlock
}

// TitleBlock mirrors the schematic title block fields.
type TitleBlock struct {
	Title    string
	Company  string
	Revision string
	Date     string
	Comments []string
}

// Component is one component entry under (components).
type Component struct {
	Ref          string
	Value        string
	Footprint    string
	Lib          string
	Part         string
	Description  string
	Properties   []Property
	SheetName    string
	SheetTstamps string
	Tstamps      string
}

// Property is an extra named field on a component.
type Property struct {
	Name  string
	Value string
}

// LibPart is one symbol entry under (libparts).
type LibPart struct {
	Lib         string
	Part        string
	Description string
	Pins        []LibPin
}

// LibPin is a pin definition within a libpart.
type LibPin struct {
	Num  string
	Name string
	Type string
}

// Library is one entry under (libraries).
type Library struct {
	Logical string
	URI     string
}

// Net is one net with its attached nodes.
type Net struct {
	Code  int
	Name  string
	Nodes []Node
}

// Node is a single pin attachment within a net.
type Node struct {
	Ref         string
	Pin         string
	PinFunction string
	PinType     string
}

// NetByName returns the net with the given name.
func (n *Netlist) NetByName(name string) (Net, bool) {
	for _, net := range n.Nets {
		if net.Name == name {
			return net, true
		}
	}
	return Net{}, false
}

// ComponentByRef returns the component with the given reference designator.
func (n *Netlist) ComponentByRef(ref string) (Component, bool) {
	for _, comp := range n.Components {
		if comp.Ref == ref {
			return comp, true
		}
	}
	return Component{}, false
}
