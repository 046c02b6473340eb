package circuit

import "fmt"

// Net is a named electrical node connecting pins.
type Net struct {
	name    string
	drive   DriveLevel
	pins    []*Pin
	circuit *Circuit
}

// Name returns the net name.
func (n *Net) Name() string { return n.name }

// Pins returns the attached pins in connection order.
func (n *Net) Pins() []*Pin { return n.pins }

// Drive returns the net's own drive flag.
func (n *Net) Drive() DriveLevel { return n.drive }

// SetDrive marks the net as externally driven. Power rails entering the
// board through a connector carry no power_out pin, so they are flagged
// DrivePower to keep the rules check from reporting them undriven.
// Returns the net for chaining.
func (n *Net) SetDrive(level DriveLevel) *Net {
	n.drive = level
	return n
}

// EffectiveDrive is the strongest drive present on the net: the net's own
// flag or the strongest supplying pin.
func (n *Net) EffectiveDrive() DriveLevel {
	max := n.drive
	for _, pin := range n.pins {
		if d := pin.Type.Supplies(); d > max {
			max = d
		}
	}
	return max
}

// Connect attaches pins to the net. Attaching a pin already on this net is
// a no-op; attaching a pin that sits on a different net is recorded as a
// construction error. Returns the net so rails can be built up in one
// statement per group.
func (n *Net) Connect(pins ...*Pin) *Net {
	for _, pin := range pins {
		if pin == nil || pin.invalid {
			continue
		}
		if pin.net == n {
			continue
		}
		if pin.net != nil {
			n.circuit.fail(fmt.Errorf("pin %s is already on net %s, cannot also join %s",
				pin.ID(), pin.net.name, n.name))
			continue
		}
		pin.net = n
		n.pins = append(n.pins, pin)
	}
	return n
}
