package erc

import "github.com/tracemodular/trace-eurorack/pkg/circuit"

// pinPair is an unordered pin-type pair, stored in canonical order.
type pinPair struct {
	a, b circuit.PinType
}

func pair(a, b circuit.PinType) pinPair {
	if b < a {
		a, b = b, a
	}
	return pinPair{a, b}
}

// conflictMatrix lists pin-type pairings that are electrically suspect when
// they share a net. Pairs not listed are fine. The table follows the
// default eeschema connection matrix.
var conflictMatrix = map[pinPair]Severity{
	pair(circuit.PinOutput, circuit.PinOutput):        Error,
	pair(circuit.PinOutput, circuit.PinPowerOut):      Error,
	pair(circuit.PinOutput, circuit.PinOpenCollector): Error,
	pair(circuit.PinOutput, circuit.PinOpenEmitter):   Error,
	pair(circuit.PinOutput, circuit.PinTriState):      Warning,

	pair(circuit.PinPowerOut, circuit.PinPowerOut):      Error,
	pair(circuit.PinPowerOut, circuit.PinOpenCollector): Error,
	pair(circuit.PinPowerOut, circuit.PinOpenEmitter):   Error,
	pair(circuit.PinPowerOut, circuit.PinTriState):      Error,

	pair(circuit.PinTriState, circuit.PinTriState): Warning,

	pair(circuit.PinOpenEmitter, circuit.PinOpenEmitter): Warning,

	pair(circuit.PinUnspecified, circuit.PinInput):         Warning,
	pair(circuit.PinUnspecified, circuit.PinOutput):        Warning,
	pair(circuit.PinUnspecified, circuit.PinBidirectional): Warning,
	pair(circuit.PinUnspecified, circuit.PinTriState):      Warning,
	pair(circuit.PinUnspecified, circuit.PinPassive):       Warning,
	pair(circuit.PinUnspecified, circuit.PinPowerIn):       Warning,
	pair(circuit.PinUnspecified, circuit.PinPowerOut):      Warning,
	pair(circuit.PinUnspecified, circuit.PinOpenCollector): Warning,
	pair(circuit.PinUnspecified, circuit.PinOpenEmitter):   Warning,
	pair(circuit.PinUnspecified, circuit.PinUnspecified):   Warning,
}

// conflict reports whether two pin types sharing a net is a finding, and
// at which severity.
func conflict(a, b circuit.PinType) (Severity, bool) {
	sev, ok := conflictMatrix[pair(a, b)]
	return sev, ok
}
