package circuit

import (
	"fmt"
	"strings"
)

// PinDef describes one pin of a part definition.
type PinDef struct {
	Number string
	Name   string
	Type   PinType
}

// PartDef is a catalog entry: the symbol identity and pinout a part is
// instantiated from. It carries the same information circuit definitions
// would otherwise pull out of a KiCad symbol library at build time.
type PartDef struct {
	Lib         string // KiCad library name, e.g. "Device"
	Name        string // symbol name within the library, e.g. "C"
	RefPrefix   string // reference designator prefix, e.g. "C"
	Description string
	Pins        []PinDef
}

// LibID returns the qualified "Lib:Name" symbol identifier.
func (d PartDef) LibID() string { return d.Lib + ":" + d.Name }

// Part is an instantiated component.
type Part struct {
	def       PartDef
	ref       string
	value     string
	footprint string
	fields    map[string]string

	pins    []*Pin
	circuit *Circuit
}

// PartOption configures a part at instantiation time.
type PartOption func(*Part)

// Value sets the part value ("10uF", "AP63203WU-7").
func Value(v string) PartOption { return func(p *Part) { p.value = v } }

// Footprint sets the qualified footprint ("Capacitor_SMD:C_0805_2012Metric").
func Footprint(fp string) PartOption { return func(p *Part) { p.footprint = fp } }

// Ref overrides the auto-assigned reference designator.
func Ref(ref string) PartOption { return func(p *Part) { p.ref = ref } }

// Field sets an extra user field carried into the netlist properties
// (MPN, DNP notes, and the like).
func Field(name, value string) PartOption {
	return func(p *Part) {
		if p.fields == nil {
			p.fields = make(map[string]string)
		}
		p.fields[name] = value
	}
}

// Def returns the catalog definition the part was instantiated from.
func (p *Part) Def() PartDef { return p.def }

// Ref returns the reference designator.
func (p *Part) Ref() string { return p.ref }

// Value returns the part value.
func (p *Part) Value() string { return p.value }

// Footprint returns the assigned footprint, possibly empty.
func (p *Part) Footprint() string { return p.footprint }

// Fields returns the extra user fields, possibly nil.
func (p *Part) Fields() map[string]string { return p.fields }

// AllPins returns the part's pins in pinout order.
func (p *Part) AllPins() []*Pin { return p.pins }

// Pin looks a pin up by number first, then by name. An unknown id is
// recorded as a construction error and a detached placeholder is returned
// so declaration sequences stay total.
func (p *Part) Pin(id string) *Pin {
	for _, pin := range p.pins {
		if pin.Number == id {
			return pin
		}
	}
	for _, pin := range p.pins {
		if pin.Name == id {
			return pin
		}
	}
	p.circuit.fail(fmt.Errorf("%s (%s) has no pin %q, valid pins: %s",
		p.ref, p.def.LibID(), id, p.pinIDs()))
	return &Pin{Number: id, Type: PinUnspecified, part: p, invalid: true}
}

// Pins looks several pins up at once, in argument order.
func (p *Part) Pins(ids ...string) []*Pin {
	pins := make([]*Pin, 0, len(ids))
	for _, id := range ids {
		pins = append(pins, p.Pin(id))
	}
	return pins
}

func (p *Part) pinIDs() string {
	ids := make([]string, 0, len(p.pins))
	for _, pin := range p.pins {
		if pin.Name != "" && pin.Name != "~" && pin.Name != pin.Number {
			ids = append(ids, pin.Number+"/"+pin.Name)
		} else {
			ids = append(ids, pin.Number)
		}
	}
	return strings.Join(ids, ", ")
}

// Pin is one pin of an instantiated part.
type Pin struct {
	Number string
	Name   string
	Type   PinType

	part    *Part
	net     *Net
	invalid bool
}

// Part returns the owning part.
func (p *Pin) Part() *Part { return p.part }

// Net returns the attached net, or nil while unconnected.
func (p *Pin) Net() *Net { return p.net }

// ID renders "REF.pin" for diagnostics.
func (p *Pin) ID() string {
	return fmt.Sprintf("%s.%s", p.part.ref, p.Number)
}
