package circuits

import (
	"fmt"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

// Part catalog. Each definition carries the pinout of the matching KiCad
// library symbol; `trace symbols verify` cross-checks this table against
// the installed libraries.

var deviceC = circuit.PartDef{
	Lib: "Device", Name: "C", RefPrefix: "C",
	Description: "Unpolarized capacitor",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

var deviceR = circuit.PartDef{
	Lib: "Device", Name: "R", RefPrefix: "R",
	Description: "Resistor",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

var deviceL = circuit.PartDef{
	Lib: "Device", Name: "L", RefPrefix: "L",
	Description: "Inductor",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

var dSchottky = circuit.PartDef{
	Lib: "Device", Name: "D_Schottky", RefPrefix: "D",
	Description: "Schottky diode",
	Pins: []circuit.PinDef{
		{Number: "1", Name: "K", Type: circuit.PinPassive},
		{Number: "2", Name: "A", Type: circuit.PinPassive},
	},
}

var deviceLED = circuit.PartDef{
	Lib: "Device", Name: "LED", RefPrefix: "D",
	Description: "Light emitting diode",
	Pins: []circuit.PinDef{
		{Number: "1", Name: "K", Type: circuit.PinPassive},
		{Number: "2", Name: "A", Type: circuit.PinPassive},
	},
}

var rPotentiometer = circuit.PartDef{
	Lib: "Device", Name: "R_Potentiometer", RefPrefix: "RV",
	Description: "Potentiometer",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive}, // wiper
		{Number: "3", Type: circuit.PinPassive},
	},
}

// ap63203 is the TSOT-23-6 buck regulator with fixed 3.3V output.
var ap63203 = circuit.PartDef{
	Lib: "Regulator_Switching", Name: "AP63203WU", RefPrefix: "U",
	Description: "3.8V-32V input, 3.3V 2A output synchronous buck converter",
	Pins: []circuit.PinDef{
		{Number: "1", Name: "GND", Type: circuit.PinPowerIn},
		{Number: "2", Name: "SW", Type: circuit.PinOutput},
		{Number: "3", Name: "IN", Type: circuit.PinPowerIn},
		{Number: "4", Name: "FB", Type: circuit.PinInput},
		{Number: "5", Name: "EN", Type: circuit.PinInput},
		{Number: "6", Name: "BST", Type: circuit.PinPassive},
	},
}

var tl072 = circuit.PartDef{
	Lib: "Amplifier_Operational", Name: "TL072", RefPrefix: "U",
	Description: "Dual JFET-input operational amplifier",
	Pins: []circuit.PinDef{
		{Number: "1", Name: "OUTA", Type: circuit.PinOutput},
		{Number: "2", Name: "-A", Type: circuit.PinInput},
		{Number: "3", Name: "+A", Type: circuit.PinInput},
		{Number: "4", Name: "V-", Type: circuit.PinPowerIn},
		{Number: "5", Name: "+B", Type: circuit.PinInput},
		{Number: "6", Name: "-B", Type: circuit.PinInput},
		{Number: "7", Name: "OUTB", Type: circuit.PinOutput},
		{Number: "8", Name: "V+", Type: circuit.PinPowerIn},
	},
}

var audioJack2 = circuit.PartDef{
	Lib: "Connector_Audio", Name: "AudioJack2", RefPrefix: "J",
	Description: "Audio jack, 2 poles (mono)",
	Pins: []circuit.PinDef{
		{Number: "S", Name: "S", Type: circuit.PinPassive},
		{Number: "T", Name: "T", Type: circuit.PinPassive},
	},
}

var swPush = circuit.PartDef{
	Lib: "Switch", Name: "SW_Push", RefPrefix: "SW",
	Description: "Momentary push button",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

var (
	conn02x05 = connector("Conn_02x05_Odd_Even", 10, "2x05 shrouded header")
	conn01x08 = connector("Conn_01x08", 8, "1x08 pin header")
	conn01x04 = connector("Conn_01x04", 4, "1x04 pin header")
	conn01x03 = connector("Conn_01x03", 3, "1x03 pin header")
)

// connector builds a Connector_Generic definition with n passive pins.
func connector(name string, n int, description string) circuit.PartDef {
	def := circuit.PartDef{
		Lib: "Connector_Generic", Name: name, RefPrefix: "J",
		Description: description,
	}
	for i := 1; i <= n; i++ {
		def.Pins = append(def.Pins, circuit.PinDef{
			Number: fmt.Sprintf("%d", i),
			Name:   fmt.Sprintf("Pin_%d", i),
			Type:   circuit.PinPassive,
		})
	}
	return def
}

// Catalog returns every part definition, for symbol verification.
func Catalog() []circuit.PartDef {
	return []circuit.PartDef{
		deviceC, deviceR, deviceL, dSchottky, deviceLED, rPotentiometer,
		ap63203, tl072, audioJack2, swPush,
		conn02x05, conn01x08, conn01x04, conn01x03,
	}
}
