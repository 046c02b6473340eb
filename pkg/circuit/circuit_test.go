package circuit

import (
	"strings"
	"testing"
)

var testOpamp = PartDef{
	Lib: "Amplifier_Operational", Name: "TestAmp", RefPrefix: "U",
	Pins: []PinDef{
		{Number: "1", Name: "OUT", Type: PinOutput},
		{Number: "2", Name: "IN", Type: PinInput},
		{Number: "3", Name: "VCC", Type: PinPowerIn},
	},
}

var testR = PartDef{
	Lib: "Device", Name: "R", RefPrefix: "R",
	Pins: []PinDef{
		{Number: "1", Type: PinPassive},
		{Number: "2", Type: PinPassive},
	},
}

func TestAutoReferences(t *testing.T) {
	c := New("test", "")
	r1 := c.AddPart(testR)
	r2 := c.AddPart(testR)
	u1 := c.AddPart(testOpamp)

	if r1.Ref() != "R1" || r2.Ref() != "R2" {
		t.Errorf("auto refs = %s, %s; want R1, R2", r1.Ref(), r2.Ref())
	}
	if u1.Ref() != "U1" {
		t.Errorf("auto ref = %s, want U1", u1.Ref())
	}
	if err := c.Err(); err != nil {
		t.Errorf("unexpected construction error: %v", err)
	}
}

func TestExplicitRefOverride(t *testing.T) {
	c := New("test", "")
	r := c.AddPart(testR, Ref("R9"))
	if r.Ref() != "R9" {
		t.Errorf("ref = %s, want R9", r.Ref())
	}
}

func TestDuplicateRefIsError(t *testing.T) {
	c := New("test", "")
	c.AddPart(testR, Ref("R1"))
	c.AddPart(testR, Ref("R1"))
	if c.Err() == nil {
		t.Fatal("expected duplicate reference error")
	}
	if !strings.Contains(c.Err().Error(), "R1") {
		t.Errorf("error should name the duplicate ref: %v", c.Err())
	}
}

func TestNetIsIdempotentByName(t *testing.T) {
	c := New("test", "")
	a := c.Net("GND")
	b := c.Net("GND")
	if a != b {
		t.Error("Net(GND) should return the same net")
	}
	if len(c.Nets()) != 1 {
		t.Errorf("expected 1 net, got %d", len(c.Nets()))
	}
}

func TestPinLookup(t *testing.T) {
	c := New("test", "")
	u := c.AddPart(testOpamp)

	tests := []struct {
		id      string
		wantNum string
	}{
		{"1", "1"},   // by number
		{"OUT", "1"}, // by name
		{"VCC", "3"},
	}
	for _, tt := range tests {
		pin := u.Pin(tt.id)
		if pin.Number != tt.wantNum {
			t.Errorf("Pin(%q).Number = %s, want %s", tt.id, pin.Number, tt.wantNum)
		}
	}
	if err := c.Err(); err != nil {
		t.Errorf("unexpected construction error: %v", err)
	}
}

func TestUnknownPinIsError(t *testing.T) {
	c := New("test", "")
	u := c.AddPart(testOpamp)
	gnd := c.Net("GND")

	gnd.Connect(u.Pin("NOPE"))

	err := c.Err()
	if err == nil {
		t.Fatal("expected unknown pin error")
	}
	if !strings.Contains(err.Error(), "NOPE") {
		t.Errorf("error should name the missing pin: %v", err)
	}
	// The placeholder pin must not have joined the net.
	if len(gnd.Pins()) != 0 {
		t.Errorf("net has %d pins, want 0", len(gnd.Pins()))
	}
}

func TestConnectConflicts(t *testing.T) {
	c := New("test", "")
	r := c.AddPart(testR)
	a := c.Net("A")
	b := c.Net("B")

	a.Connect(r.Pin("1"))
	a.Connect(r.Pin("1")) // same net again: no-op
	if len(a.Pins()) != 1 {
		t.Errorf("net A has %d pins, want 1", len(a.Pins()))
	}
	if err := c.Err(); err != nil {
		t.Fatalf("re-connect to same net must not error: %v", err)
	}

	b.Connect(r.Pin("1")) // different net: error
	if c.Err() == nil {
		t.Fatal("expected conflict error for pin on two nets")
	}
	if r.Pin("1").Net() != a {
		t.Error("pin should stay on its original net")
	}
}

func TestEffectiveDrive(t *testing.T) {
	c := New("test", "")
	u := c.AddPart(testOpamp)
	r := c.AddPart(testR)

	passive := c.Net("P").Connect(r.Pin("1"))
	if got := passive.EffectiveDrive(); got != DrivePassive {
		t.Errorf("passive net drive = %v, want %v", got, DrivePassive)
	}

	driven := c.Net("D").Connect(u.Pin("OUT"), r.Pin("2"))
	if got := driven.EffectiveDrive(); got != DrivePushPull {
		t.Errorf("driven net drive = %v, want %v", got, DrivePushPull)
	}

	flagged := c.Net("+12V").SetDrive(DrivePower)
	if got := flagged.EffectiveDrive(); got != DrivePower {
		t.Errorf("flagged net drive = %v, want %v", got, DrivePower)
	}
}

func TestDeterministicOrder(t *testing.T) {
	c := New("test", "")
	c.Net("GND")
	c.Net("+12V")
	c.AddPart(testR)
	c.AddPart(testOpamp)

	if c.Nets()[0].Name() != "GND" || c.Nets()[1].Name() != "+12V" {
		t.Error("nets must keep declaration order")
	}
	if c.Parts()[0].Ref() != "R1" || c.Parts()[1].Ref() != "U1" {
		t.Error("parts must keep declaration order")
	}
}
