package circuits

import (
	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

func init() {
	circuit.Register("mcu_display",
		"MCU module header, I2C OLED display and reset button",
		MCUDisplay)
}

// MCUDisplay wires the microcontroller module header to the SSD1306 OLED
// header over I2C, with pull-ups, decoupling, and a reset button.
//
// MCU header pinout: 1 = 3V3, 2 = GND, 3 = SDA, 4 = SCL,
// 5-7 = ADC inputs from the controls board, 8 = RUN (reset).
func MCUDisplay() *circuit.Circuit {
	c := circuit.New("mcu_display",
		"MCU module header, I2C OLED display and reset button")

	plus3v3 := c.Net("+3.3V").SetDrive(circuit.DrivePower)
	gnd := c.Net("GND").SetDrive(circuit.DrivePower)
	sda := c.Net("SDA")
	scl := c.Net("SCL")

	mcu := c.AddPart(conn01x08,
		circuit.Value("MCU_Module"),
		circuit.Footprint("Connector_PinHeader_2.54mm:PinHeader_1x08_P2.54mm_Vertical"))

	// OLED header pinout: 1 = GND, 2 = VCC, 3 = SCL, 4 = SDA
	oled := c.AddPart(conn01x04,
		circuit.Value("SSD1306_OLED"),
		circuit.Footprint("Connector_PinHeader_2.54mm:PinHeader_1x04_P2.54mm_Vertical"))

	rpu1 := c.AddPart(deviceR, // SDA pull-up
		circuit.Value("4k7"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))
	rpu2 := c.AddPart(deviceR, // SCL pull-up
		circuit.Value("4k7"),
		circuit.Footprint("Resistor_SMD:R_0603_1608Metric"))

	cdec := c.AddPart(deviceC, // display supply decoupling
		circuit.Value("100nF"),
		circuit.Footprint("Capacitor_SMD:C_0603_1608Metric"))

	sw1 := c.AddPart(swPush,
		circuit.Value("Reset"),
		circuit.Footprint("Button_Switch_SMD:SW_SPST_TL3342"))

	// Controls header carrying the three ADC signals from user_controls.
	jadc := c.AddPart(conn01x03,
		circuit.Value("CTRL_ADC"),
		circuit.Footprint("Connector_PinHeader_2.54mm:PinHeader_1x03_P2.54mm_Vertical"))

	plus3v3.Connect(mcu.Pin("1"), oled.Pin("2"), rpu1.Pin("1"), rpu2.Pin("1"), cdec.Pin("1"))
	gnd.Connect(mcu.Pin("2"), oled.Pin("1"), cdec.Pin("2"), sw1.Pin("2"))

	sda.Connect(mcu.Pin("3"), oled.Pin("4"), rpu1.Pin("2"))
	scl.Connect(mcu.Pin("4"), oled.Pin("3"), rpu2.Pin("2"))

	c.Net("ADC0").Connect(mcu.Pin("5"), jadc.Pin("1"))
	c.Net("ADC1").Connect(mcu.Pin("6"), jadc.Pin("2"))
	c.Net("ADC2").Connect(mcu.Pin("7"), jadc.Pin("3"))

	c.Net("RUN").Connect(mcu.Pin("8"), sw1.Pin("1"))

	return c
}
