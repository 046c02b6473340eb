// Package circuits holds the circuit definitions of the Trace Eurorack
// module. Each file declares one buildable circuit and registers it, so
// `trace build` picks it up.
package circuits

import (
	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

func init() {
	circuit.Register("power_supply",
		"Eurorack +12V to +3.3V buck converter with reverse polarity protection",
		PowerSupply)
}

// PowerSupply converts the Eurorack +12V rail to +3.3V using an AP63203WU
// buck regulator, with reverse polarity protection on the -12V rail.
func PowerSupply() *circuit.Circuit {
	c := circuit.New("power_supply",
		"Eurorack +12V to +3.3V buck converter with reverse polarity protection")

	// Power nets. The rails enter through the bus connector, so they are
	// flagged as externally driven for the rules check.
	plus12 := c.Net("+12V").SetDrive(circuit.DrivePower)
	minus12 := c.Net("-12V").SetDrive(circuit.DrivePower)
	gnd := c.Net("GND").SetDrive(circuit.DrivePower)
	plus3v3 := c.Net("+3.3V").SetDrive(circuit.DrivePower)
	sw := c.Net("SW") // switching node between regulator and inductor

	// Eurorack power connector (2x5 shrouded header).
	// Pin 1 = -12V, pins 2-8 = GND, pins 9/10 = +12V.
	j1 := c.AddPart(conn02x05,
		circuit.Value("Eurorack_Power"),
		circuit.Footprint("Connector_IDC:IDC-Header_2x05_P2.54mm_Vertical"))

	// Schottky diode for reverse polarity protection on -12V
	d1 := c.AddPart(dSchottky,
		circuit.Value("SS14"),
		circuit.Footprint("Diode_SMD:D_SMA"))

	// Buck regulator, fixed 3.3V output
	u1 := c.AddPart(ap63203,
		circuit.Value("AP63203WU-7"),
		circuit.Footprint("Package_TO_SOT_SMD:TSOT-23-6"))

	c1 := c.AddPart(deviceC, // input capacitor
		circuit.Value("10uF"),
		circuit.Footprint("Capacitor_SMD:C_0805_2012Metric"))
	c2 := c.AddPart(deviceC, // output capacitor
		circuit.Value("22uF"),
		circuit.Footprint("Capacitor_SMD:C_0805_2012Metric"))
	c3 := c.AddPart(deviceC, // bootstrap capacitor
		circuit.Value("100nF"),
		circuit.Footprint("Capacitor_SMD:C_0402_1005Metric"))

	l1 := c.AddPart(deviceL, // output inductor
		circuit.Value("10uH"),
		circuit.Footprint("Inductor_SMD:L_1210_3225Metric"))

	// -12V rail with reverse polarity protection: diode cathode to the
	// connector, anode to the protected rail.
	c.Net("-12V_IN").Connect(j1.Pin("1"), d1.Pin("K"))
	minus12.Connect(d1.Pin("A"))

	plus12.Connect(j1.Pin("9"), j1.Pin("10"), c1.Pin("1"), u1.Pin("IN"), u1.Pin("EN"))

	gnd.Connect(j1.Pins("2", "3", "4", "5", "6", "7", "8")...)
	gnd.Connect(c1.Pin("2"), u1.Pin("GND"), c2.Pin("2"))

	// Buck output stage: SW node feeds the bootstrap cap and the inductor,
	// the inductor output is the 3.3V rail, FB senses it.
	sw.Connect(u1.Pin("SW"), c3.Pin("1"), l1.Pin("1"))
	c.Net("BST").Connect(u1.Pin("BST"), c3.Pin("2"))
	plus3v3.Connect(l1.Pin("2"), c2.Pin("1"), u1.Pin("FB"))

	return c
}
