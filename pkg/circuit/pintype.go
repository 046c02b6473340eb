package circuit

// PinType is the electrical type of a pin. Values follow the KiCad netlist
// pintype vocabulary so they can be emitted verbatim.
type PinType string

const (
	PinInput         PinType = "input"
	PinOutput        PinType = "output"
	PinBidirectional PinType = "bidirectional"
	PinTriState      PinType = "tri_state"
	PinPassive       PinType = "passive"
	PinFree          PinType = "free"
	PinUnspecified   PinType = "unspecified"
	PinPowerIn       PinType = "power_in"
	PinPowerOut      PinType = "power_out"
	PinOpenCollector PinType = "open_collector"
	PinOpenEmitter   PinType = "open_emitter"
	PinNoConnect     PinType = "no_connect"
)

// DriveLevel orders how strongly something can drive a net. A net's
// effective drive is the maximum of its own flag and the strongest
// attached pin.
type DriveLevel int

const (
	DriveNone DriveLevel = iota
	DrivePassive
	DriveOneSide
	DriveTriState
	DrivePushPull
	DrivePower
)

func (d DriveLevel) String() string {
	switch d {
	case DriveNone:
		return "none"
	case DrivePassive:
		return "passive"
	case DriveOneSide:
		return "one-side"
	case DriveTriState:
		return "tri-state"
	case DrivePushPull:
		return "push-pull"
	case DrivePower:
		return "power"
	}
	return "unknown"
}

// Supplies returns the drive a pin of this type contributes to its net.
func (t PinType) Supplies() DriveLevel {
	switch t {
	case PinOutput:
		return DrivePushPull
	case PinTriState:
		return DriveTriState
	case PinBidirectional:
		return DriveTriState
	case PinOpenCollector, PinOpenEmitter:
		return DriveOneSide
	case PinPowerOut:
		return DrivePower
	case PinPassive:
		return DrivePassive
	}
	return DriveNone
}

// Requires returns the minimum net drive a pin of this type must see.
// Pins with no requirement return DriveNone.
func (t PinType) Requires() DriveLevel {
	switch t {
	case PinInput:
		return DriveOneSide
	case PinPowerIn:
		return DrivePower
	}
	return DriveNone
}
