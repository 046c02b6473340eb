package netlist

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

// Options parameterizes netlist generation. Zero values get sensible
// defaults; Now and NewID exist so tests can generate stable output.
type Options struct {
	Tool     string // tool string stamped into the design header
	Title    string
	Company  string
	Revision string

	Now   func() time.Time // defaults to time.Now
	NewID func() string    // component tstamp source, defaults to uuid.NewString
}

func (o *Options) fill() {
	if o.Tool == "" {
		o.Tool = "trace-eurorack"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
}

// Generate builds a netlist from a circuit. The circuit must have been
// constructed without errors; construction problems are not repeated here.
func Generate(c *circuit.Circuit, opts Options) *Netlist {
	opts.fill()
	date := opts.Now().Format("2006-01-02 15:04:05")

	nl := &Netlist{
		Design: Design{
			Source: c.Name(),
			Date:   date,
			Tool:   opts.Tool,
			Sheet: Sheet{
				Number:  1,
				Name:    "/",
				Tstamps: "/",
				TitleBlock: TitleBlock{
					Title:    opts.Title,
					Company:  opts.Company,
					Revision: opts.Revision,
					Date:     date,
				},
			},
		},
	}

	libparts := map[string]bool{}
	libs := map[string]bool{}

	for _, part := range c.Parts() {
		def := part.Def()
		comp := Component{
			Ref:          part.Ref(),
			Value:        part.Value(),
			Footprint:    part.Footprint(),
			Lib:          def.Lib,
			Part:         def.Name,
			Description:  def.Description,
			SheetName:    "/",
			SheetTstamps: "/",
			Tstamps:      opts.NewID(),
		}
		for _, name := range sortedFieldNames(part.Fields()) {
			comp.Properties = append(comp.Properties, Property{Name: name, Value: part.Fields()[name]})
		}
		nl.Components = append(nl.Components, comp)

		if !libparts[def.LibID()] {
			libparts[def.LibID()] = true
			lp := LibPart{Lib: def.Lib, Part: def.Name, Description: def.Description}
			for _, pd := range def.Pins {
				lp.Pins = append(lp.Pins, LibPin{Num: pd.Number, Name: pinName(pd.Name), Type: string(pd.Type)})
			}
			nl.LibParts = append(nl.LibParts, lp)
		}
		if !libs[def.Lib] {
			libs[def.Lib] = true
			nl.Libraries = append(nl.Libraries, Library{
				Logical: def.Lib,
				URI:     def.Lib + ".kicad_sym",
			})
		}
	}

	code := 0
	for _, net := range c.Nets() {
		if len(net.Pins()) == 0 {
			continue
		}
		code++
		n := Net{Code: code, Name: net.Name()}
		for _, pin := range net.Pins() {
			node := Node{
				Ref:     pin.Part().Ref(),
				Pin:     pin.Number,
				PinType: string(pin.Type),
			}
			if fn := pinName(pin.Name); fn != "~" {
				node.PinFunction = fn
			}
			n.Nodes = append(n.Nodes, node)
		}
		nl.Nets = append(nl.Nets, n)
	}

	return nl
}

// pinName maps an absent name to KiCad's "~" placeholder.
func pinName(name string) string {
	if name == "" {
		return "~"
	}
	return name
}

func sortedFieldNames(fields map[string]string) []string {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileName returns the conventional output file name for a circuit.
func FileName(circuitName string) string {
	return fmt.Sprintf("%s.net", circuitName)
}
