package netlist

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

var regDef = circuit.PartDef{
	Lib: "Regulator_Linear", Name: "TestReg", RefPrefix: "U",
	Description: "Test regulator",
	Pins: []circuit.PinDef{
		{Number: "1", Name: "IN", Type: circuit.PinPowerIn},
		{Number: "2", Name: "GND", Type: circuit.PinPowerIn},
		{Number: "3", Name: "OUT", Type: circuit.PinPowerOut},
	},
}

var capDef = circuit.PartDef{
	Lib: "Device", Name: "C", RefPrefix: "C",
	Description: "Unpolarized capacitor",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

// testCircuit builds a small linear regulator circuit.
func testCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New("test_supply", "test supply")

	vin := c.Net("VIN").SetDrive(circuit.DrivePower)
	gnd := c.Net("GND").SetDrive(circuit.DrivePower)
	vout := c.Net("VOUT")

	u1 := c.AddPart(regDef, circuit.Value("TestReg-3.3"),
		circuit.Footprint("Package_TO_SOT_SMD:SOT-223"))
	c1 := c.AddPart(capDef, circuit.Value("10uF"))

	vin.Connect(u1.Pin("IN"), c1.Pin("1"))
	gnd.Connect(u1.Pin("GND"), c1.Pin("2"))
	vout.Connect(u1.Pin("OUT"))

	if err := c.Err(); err != nil {
		t.Fatalf("circuit construction: %v", err)
	}
	return c
}

// stableOptions returns Options that produce deterministic output.
func stableOptions() Options {
	seq := 0
	return Options{
		Tool:     "trace-test",
		Title:    "Test",
		Revision: "r1",
		Now:      func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		NewID:    func() string { seq++; return fmt.Sprintf("id-%04d", seq) },
	}
}

func TestGenerate(t *testing.T) {
	nl := Generate(testCircuit(t), stableOptions())

	if nl.Design.Source != "test_supply" {
		t.Errorf("Source = %q", nl.Design.Source)
	}
	if nl.Design.Tool != "trace-test" {
		t.Errorf("Tool = %q", nl.Design.Tool)
	}
	if nl.Design.Sheet.TitleBlock.Revision != "r1" {
		t.Errorf("Revision = %q", nl.Design.Sheet.TitleBlock.Revision)
	}

	if len(nl.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(nl.Components))
	}
	u1, ok := nl.ComponentByRef("U1")
	if !ok {
		t.Fatal("U1 missing")
	}
	if u1.Value != "TestReg-3.3" || u1.Lib != "Regulator_Linear" || u1.Part != "TestReg" {
		t.Errorf("U1 = %+v", u1)
	}
	if u1.Tstamps != "id-0001" {
		t.Errorf("U1 tstamps = %q, want id-0001", u1.Tstamps)
	}

	if len(nl.LibParts) != 2 {
		t.Errorf("libparts = %d, want 2", len(nl.LibParts))
	}
	if len(nl.Libraries) != 2 {
		t.Errorf("libraries = %d, want 2", len(nl.Libraries))
	}

	// Net codes follow declaration order, 1-based.
	if len(nl.Nets) != 3 {
		t.Fatalf("nets = %d, want 3", len(nl.Nets))
	}
	vin, ok := nl.NetByName("VIN")
	if !ok {
		t.Fatal("VIN missing")
	}
	if vin.Code != 1 {
		t.Errorf("VIN code = %d, want 1", vin.Code)
	}
	if len(vin.Nodes) != 2 {
		t.Fatalf("VIN nodes = %d, want 2", len(vin.Nodes))
	}
	if vin.Nodes[0].Ref != "U1" || vin.Nodes[0].Pin != "1" {
		t.Errorf("VIN node 0 = %+v", vin.Nodes[0])
	}
	if vin.Nodes[0].PinFunction != "IN" || vin.Nodes[0].PinType != "power_in" {
		t.Errorf("VIN node 0 pin info = %+v", vin.Nodes[0])
	}
	// Anonymous pins get no pinfunction.
	if vin.Nodes[1].PinFunction != "" {
		t.Errorf("C1 node pinfunction = %q, want empty", vin.Nodes[1].PinFunction)
	}
}

func TestGenerateSkipsEmptyNets(t *testing.T) {
	c := testCircuit(t)
	c.Net("UNUSED")
	nl := Generate(c, stableOptions())
	if _, ok := nl.NetByName("UNUSED"); ok {
		t.Error("empty net must not appear in the netlist")
	}
}

func TestWriteAndParseRoundTrip(t *testing.T) {
	nl := Generate(testCircuit(t), stableOptions())

	var sb strings.Builder
	if err := nl.Write(&sb); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "(export") {
		t.Errorf("output must start with (export, got %q", out[:20])
	}
	for _, want := range []string{
		`(version "E")`,
		`(source "test_supply")`,
		`(ref "U1")`,
		`(footprint "Package_TO_SOT_SMD:SOT-223")`,
		`(name "VIN")`,
		`(pintype "power_in")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}

	back, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Design.Source != nl.Design.Source {
		t.Errorf("Source = %q, want %q", back.Design.Source, nl.Design.Source)
	}
	if len(back.Components) != len(nl.Components) {
		t.Errorf("components = %d, want %d", len(back.Components), len(nl.Components))
	}
	if len(back.Nets) != len(nl.Nets) {
		t.Errorf("nets = %d, want %d", len(back.Nets), len(nl.Nets))
	}
	gnd, ok := back.NetByName("GND")
	if !ok {
		t.Fatal("GND missing after round trip")
	}
	if gnd.Code != 2 || len(gnd.Nodes) != 2 {
		t.Errorf("GND = %+v", gnd)
	}
	u1, ok := back.ComponentByRef("U1")
	if !ok {
		t.Fatal("U1 missing after round trip")
	}
	if u1.Footprint != "Package_TO_SOT_SMD:SOT-223" {
		t.Errorf("U1 footprint = %q", u1.Footprint)
	}
}

func TestParseRejectsNonNetlist(t *testing.T) {
	inputs := []string{
		"",
		"(kicad_sch (version 1))",
		"garbage",
	}
	for _, input := range inputs {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}
