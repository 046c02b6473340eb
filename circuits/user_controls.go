package circuits

import (
	"fmt"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

func init() {
	circuit.Register("user_controls",
		"Front panel pots, trigger button and status LED",
		UserControls)
}

// UserControls is the front panel board section: three potentiometers
// feeding the MCU ADC header, a trigger button, and a status LED.
func UserControls() *circuit.Circuit {
	c := circuit.New("user_controls",
		"Front panel pots, trigger button and status LED")

	plus3v3 := c.Net("+3.3V").SetDrive(circuit.DrivePower)
	gnd := c.Net("GND").SetDrive(circuit.DrivePower)

	// ADC header towards mcu_display, one pin per wiper.
	jadc := c.AddPart(conn01x03,
		circuit.Value("CTRL_ADC"),
		circuit.Footprint("Connector_PinHeader_2.54mm:PinHeader_1x03_P2.54mm_Vertical"))

	names := []string{"RATE", "DEPTH", "MIX"}
	for i, name := range names {
		pot := c.AddPart(rPotentiometer,
			circuit.Value("10k"),
			circuit.Footprint("Potentiometer_THT:Potentiometer_Alpha_RD901F-40-00D_Single_Vertical"),
			circuit.Field("Panel", name))
		plus3v3.Connect(pot.Pin("1"))
		gnd.Connect(pot.Pin("3"))
		c.Net(fmt.Sprintf("POT_%s", name)).Connect(pot.Pin("2"), jadc.Pin(fmt.Sprintf("%d", i+1)))
	}

	// Trigger button with pull-up, active low towards the MCU.
	jtrig := c.AddPart(conn01x03,
		circuit.Value("TRIG_LED"),
		circuit.Footprint("Connector_PinHeader_2.54mm:PinHeader_1x03_P2.54mm_Vertical"))
	sw1 := c.AddPart(swPush,
		circuit.Value("Trigger"),
		circuit.Footprint("Button_Switch_THT:SW_PUSH_6mm"))
	rpu := c.AddPart(deviceR,
		circuit.Value("10k"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))

	plus3v3.Connect(rpu.Pin("1"))
	c.Net("TRIG").Connect(rpu.Pin("2"), sw1.Pin("1"), jtrig.Pin("1"))
	gnd.Connect(sw1.Pin("2"), jtrig.Pin("3"))

	// Status LED driven from the MCU through the same header.
	led := c.AddPart(deviceLED,
		circuit.Value("Green"),
		circuit.Footprint("LED_SMD:LED_0805_2012Metric"))
	rled := c.AddPart(deviceR,
		circuit.Value("330R"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))

	c.Net("LED_DRV").Connect(jtrig.Pin("2"), rled.Pin("1"))
	c.Net("LED_A").Connect(rled.Pin("2"), led.Pin("A"))
	gnd.Connect(led.Pin("K"))

	return c
}
