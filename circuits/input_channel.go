package circuits

import (
	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

func init() {
	circuit.Register("input_channel",
		"AC-coupled audio input buffer with rail clamps",
		InputChannel)
}

// InputChannel buffers one audio input: 3.5mm jack, AC coupling, a unity
// gain TL072 follower, and Schottky clamps holding the ADC-bound signal
// inside the rails.
func InputChannel() *circuit.Circuit {
	c := circuit.New("input_channel",
		"AC-coupled audio input buffer with rail clamps")

	plus12 := c.Net("+12V").SetDrive(circuit.DrivePower)
	minus12 := c.Net("-12V").SetDrive(circuit.DrivePower)
	gnd := c.Net("GND").SetDrive(circuit.DrivePower)

	j1 := c.AddPart(audioJack2,
		circuit.Value("PJ398SM"),
		circuit.Footprint("Connector_Audio:Jack_3.5mm_PJ398SM_Vertical"))

	u1 := c.AddPart(tl072,
		circuit.Value("TL072"),
		circuit.Footprint("Package_SO:SOIC-8_3.9x4.9mm_P1.27mm"))

	cin := c.AddPart(deviceC, // AC coupling
		circuit.Value("1uF"),
		circuit.Footprint("Capacitor_SMD:C_0805_2012Metric"))
	r1 := c.AddPart(deviceR, // input series
		circuit.Value("100k"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))
	r2 := c.AddPart(deviceR, // bias to ground
		circuit.Value("100k"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))
	r3 := c.AddPart(deviceR, // output series
		circuit.Value("1k"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))

	d1 := c.AddPart(dSchottky, // clamp to +12V
		circuit.Value("BAT54"),
		circuit.Footprint("Diode_SMD:D_SOT-23"))
	d2 := c.AddPart(dSchottky, // clamp to -12V
		circuit.Value("BAT54"),
		circuit.Footprint("Diode_SMD:D_SOT-23"))

	cdec1 := c.AddPart(deviceC, // V+ decoupling
		circuit.Value("100nF"),
		circuit.Footprint("Capacitor_SMD:C_0603_1608Metric"))
	cdec2 := c.AddPart(deviceC, // V- decoupling
		circuit.Value("100nF"),
		circuit.Footprint("Capacitor_SMD:C_0603_1608Metric"))

	jout := c.AddPart(conn01x03,
		circuit.Value("CH1_OUT"),
		circuit.Footprint("Connector_PinHeader_2.54mm:PinHeader_1x03_P2.54mm_Vertical"))

	// Jack into the coupling cap, sleeve grounded.
	gnd.Connect(j1.Pin("S"))
	c.Net("IN_RAW").Connect(j1.Pin("T"), cin.Pin("1"))

	// Biased input node into the follower.
	c.Net("IN_AC").Connect(cin.Pin("2"), r1.Pin("1"))
	c.Net("IN_BIAS").Connect(r1.Pin("2"), r2.Pin("1"), u1.Pin("+A"))
	gnd.Connect(r2.Pin("2"))

	// Unity gain: output fed straight back to the inverting input.
	out := c.Net("CH1_OUT")
	out.Connect(u1.Pin("OUTA"), u1.Pin("-A"), r3.Pin("1"))

	// Clamped, series-protected signal towards the ADC header.
	clamped := c.Net("CH1_ADC")
	clamped.Connect(r3.Pin("2"), d1.Pin("A"), d2.Pin("K"), jout.Pin("2"))
	plus12.Connect(d1.Pin("K"))
	minus12.Connect(d2.Pin("A"))

	// Unused second unit: follower on ground so it cannot oscillate.
	gnd.Connect(u1.Pin("+B"))
	c.Net("NC_B").Connect(u1.Pin("OUTB"), u1.Pin("-B"))

	// Opamp power and decoupling.
	plus12.Connect(u1.Pin("V+"), cdec1.Pin("1"))
	minus12.Connect(u1.Pin("V-"), cdec2.Pin("1"))
	gnd.Connect(cdec1.Pin("2"), cdec2.Pin("2"), jout.Pin("1"), jout.Pin("3"))

	return c
}
