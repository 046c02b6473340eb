package bom

import (
	"strings"
	"testing"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

var capDef = circuit.PartDef{
	Lib: "Device", Name: "C", RefPrefix: "C",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

var resDef = circuit.PartDef{
	Lib: "Device", Name: "R", RefPrefix: "R",
	Pins: []circuit.PinDef{
		{Number: "1", Type: circuit.PinPassive},
		{Number: "2", Type: circuit.PinPassive},
	},
}

const fp0805 = "Capacitor_SMD:C_0805_2012Metric"

func TestBuildGroupsEquivalentValues(t *testing.T) {
	c := circuit.New("bom_test", "")
	c.AddPart(capDef, circuit.Value("4.7uF"), circuit.Footprint(fp0805)) // C1
	c.AddPart(capDef, circuit.Value("4700nF"), circuit.Footprint(fp0805)) // C2
	c.AddPart(capDef, circuit.Value("100nF"), circuit.Footprint(fp0805)) // C3
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	lines := Build(c)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %+v", len(lines), lines)
	}
	first := lines[0]
	if first.Quantity != 2 || len(first.Refs) != 2 {
		t.Errorf("grouped line = %+v", first)
	}
	if first.Refs[0] != "C1" || first.Refs[1] != "C2" {
		t.Errorf("refs = %v", first.Refs)
	}
	// The display value is the first spelling seen.
	if first.Value != "4.7uF" {
		t.Errorf("value = %q", first.Value)
	}
}

func TestBuildSeparatesByFootprint(t *testing.T) {
	c := circuit.New("bom_test", "")
	c.AddPart(capDef, circuit.Value("100nF"), circuit.Footprint(fp0805))
	c.AddPart(capDef, circuit.Value("100nF"),
		circuit.Footprint("Capacitor_SMD:C_0402_1005Metric"))

	lines := Build(c)
	if len(lines) != 2 {
		t.Errorf("same value in different footprints must not group: %+v", lines)
	}
}

func TestBuildGroupsPartNumbersLiterally(t *testing.T) {
	c := circuit.New("bom_test", "")
	c.AddPart(resDef, circuit.Value("NE5532"))
	c.AddPart(resDef, circuit.Value("NE5532"))
	c.AddPart(resDef, circuit.Value("NE5534"))

	lines := Build(c)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", lines[0].Quantity)
	}
}

func TestBuildOrdersRefsNumerically(t *testing.T) {
	c := circuit.New("bom_test", "")
	for i := 0; i < 12; i++ {
		c.AddPart(resDef, circuit.Value("10k"))
	}

	lines := Build(c)
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	refs := lines[0].Refs
	if refs[1] != "R2" || refs[9] != "R10" || refs[11] != "R12" {
		t.Errorf("refs = %v", refs)
	}
}

func TestWriteCSV(t *testing.T) {
	lines := []Line{
		{
			Refs: []string{"C1", "C2"}, Quantity: 2,
			Value: "4.7uF", Footprint: fp0805, LibID: "Device:C",
		},
	}
	var sb strings.Builder
	if err := WriteCSV(&sb, lines); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got := sb.String()
	want := "Refs,Qty,Value,Footprint,Symbol\n" +
		"C1 C2,2,4.7uF,Capacitor_SMD:C_0805_2012Metric,Device:C\n"
	if got != want {
		t.Errorf("csv = %q, want %q", got, want)
	}
}
