// Package circuit provides the schematic-capture object model: parts, pins
// and nets declared from Go code. Circuit definitions build a Circuit,
// electrical rules are checked against it, and a KiCad netlist is generated
// from it.
package circuit

import (
	"fmt"
)

// Circuit is a set of parts and the nets connecting their pins.
//
// Construction errors (duplicate references, unknown pins, conflicting
// connections) are collected on the circuit rather than returned from every
// declarative call, so circuit definitions read as flat declarations. Callers
// must check Err before using the circuit.
type Circuit struct {
	name        string
	description string

	parts      []*Part
	nets       []*Net
	netsByName map[string]*Net
	refs       map[string]*Part
	refSeq     map[string]int

	errs []error
}

// New creates an empty circuit.
func New(name, description string) *Circuit {
	return &Circuit{
		name:        name,
		description: description,
		netsByName:  make(map[string]*Net),
		refs:        make(map[string]*Part),
		refSeq:      make(map[string]int),
	}
}

// Name returns the circuit name, used for netlist and BOM file names.
func (c *Circuit) Name() string { return c.name }

// Description returns the one-line circuit description.
func (c *Circuit) Description() string { return c.description }

// Parts returns the parts in declaration order.
func (c *Circuit) Parts() []*Part { return c.parts }

// Nets returns the nets in declaration order.
func (c *Circuit) Nets() []*Net { return c.nets }

// Net returns the named net, creating it when first referenced.
func (c *Circuit) Net(name string) *Net {
	if net, ok := c.netsByName[name]; ok {
		return net
	}
	net := &Net{name: name, circuit: c}
	c.netsByName[name] = net
	c.nets = append(c.nets, net)
	return net
}

// AddPart instantiates a part from a catalog definition. The reference
// designator is assigned from the definition's prefix (R1, R2, C1, ...)
// unless overridden with the Ref option.
func (c *Circuit) AddPart(def PartDef, opts ...PartOption) *Part {
	part := &Part{
		def:     def,
		circuit: c,
	}
	for _, pd := range def.Pins {
		part.pins = append(part.pins, &Pin{
			Number: pd.Number,
			Name:   pd.Name,
			Type:   pd.Type,
			part:   part,
		})
	}
	for _, opt := range opts {
		opt(part)
	}
	if part.ref == "" {
		c.refSeq[def.RefPrefix]++
		part.ref = fmt.Sprintf("%s%d", def.RefPrefix, c.refSeq[def.RefPrefix])
	}
	if prev, ok := c.refs[part.ref]; ok {
		c.fail(fmt.Errorf("duplicate reference %s (already used by %s:%s)",
			part.ref, prev.def.Lib, prev.def.Name))
	}
	c.refs[part.ref] = part
	c.parts = append(c.parts, part)
	return part
}

// PartByRef returns the part with the given reference designator.
func (c *Circuit) PartByRef(ref string) (*Part, bool) {
	p, ok := c.refs[ref]
	return p, ok
}

// Err returns the accumulated construction errors, joined, or nil when the
// circuit was built cleanly.
func (c *Circuit) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	if len(c.errs) == 1 {
		return c.errs[0]
	}
	return fmt.Errorf("%d construction errors, first: %w", len(c.errs), c.errs[0])
}

// Errs returns all accumulated construction errors.
func (c *Circuit) Errs() []error { return c.errs }

func (c *Circuit) fail(err error) {
	c.errs = append(c.errs, err)
}
