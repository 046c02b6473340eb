// Package erc implements the electrical rules check run against a circuit
// before its netlist is generated. The rules mirror what schematic-capture
// tools enforce: electrically conflicting pin pairs on a net, nets that no
// source drives, pins left unconnected, and suspicious single-pin nets.
package erc

import (
	"fmt"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

// Severity classifies a violation.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// Violation codes.
const (
	CodePinConflict    = "pin-conflict"
	CodeUndrivenNet    = "undriven-net"
	CodeUnconnectedPin = "unconnected-pin"
	CodeNoConnectUsed  = "no-connect-used"
	CodeSinglePinNet   = "single-pin-net"
)

// Violation is one rule finding.
type Violation struct {
	Severity Severity
	Code     string
	Net      string // net name, when the finding is net-scoped
	Pin      string // "REF.pin", when the finding is pin-scoped
	Message  string
}

func (v Violation) String() string {
	loc := v.Net
	if v.Pin != "" {
		loc = v.Pin
	}
	return fmt.Sprintf("%s [%s] %s: %s", v.Severity, v.Code, loc, v.Message)
}

// Result collects the findings of one check run.
type Result struct {
	Violations []Violation
}

// ErrorCount returns the number of error-severity findings.
func (r *Result) ErrorCount() int { return r.count(Error) }

// WarningCount returns the number of warning-severity findings.
func (r *Result) WarningCount() int { return r.count(Warning) }

// Passed reports whether the check produced no errors. Warnings do not
// fail a build.
func (r *Result) Passed() bool { return r.ErrorCount() == 0 }

func (r *Result) count(sev Severity) int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Result) add(v Violation) {
	r.Violations = append(r.Violations, v)
}

// Check runs all electrical rules against the circuit.
func Check(c *circuit.Circuit) *Result {
	res := &Result{}
	for _, net := range c.Nets() {
		checkNetSize(res, net)
		checkPinConflicts(res, net)
		checkDrive(res, net)
	}
	for _, part := range c.Parts() {
		checkPartPins(res, part)
	}
	return res
}

func checkNetSize(res *Result, net *circuit.Net) {
	if len(net.Pins()) >= 2 {
		return
	}
	res.add(Violation{
		Severity: Warning,
		Code:     CodeSinglePinNet,
		Net:      net.Name(),
		Message:  fmt.Sprintf("net has %d pin(s), expected at least 2", len(net.Pins())),
	})
}

func checkPinConflicts(res *Result, net *circuit.Net) {
	pins := net.Pins()
	for i := 0; i < len(pins); i++ {
		for j := i + 1; j < len(pins); j++ {
			sev, ok := conflict(pins[i].Type, pins[j].Type)
			if !ok {
				continue
			}
			res.add(Violation{
				Severity: sev,
				Code:     CodePinConflict,
				Net:      net.Name(),
				Message: fmt.Sprintf("%s (%s) conflicts with %s (%s)",
					pins[i].ID(), pins[i].Type, pins[j].ID(), pins[j].Type),
			})
		}
	}
}

func checkDrive(res *Result, net *circuit.Net) {
	available := net.EffectiveDrive()
	for _, pin := range net.Pins() {
		need := pin.Type.Requires()
		if need == circuit.DriveNone || available >= need {
			continue
		}
		// A rail that nothing powers is a wiring error; a signal input
		// seeing only passives is merely suspicious.
		sev := Warning
		if need == circuit.DrivePower {
			sev = Error
		}
		res.add(Violation{
			Severity: sev,
			Code:     CodeUndrivenNet,
			Net:      net.Name(),
			Pin:      pin.ID(),
			Message: fmt.Sprintf("%s pin needs %s drive but net %s only has %s",
				pin.Type, need, net.Name(), available),
		})
	}
}

func checkPartPins(res *Result, part *circuit.Part) {
	for _, pin := range part.AllPins() {
		switch {
		case pin.Net() == nil:
			if pin.Type == circuit.PinNoConnect || pin.Type == circuit.PinFree {
				continue
			}
			res.add(Violation{
				Severity: Warning,
				Code:     CodeUnconnectedPin,
				Pin:      pin.ID(),
				Message:  fmt.Sprintf("%s pin is not connected", pin.Type),
			})
		case pin.Type == circuit.PinNoConnect:
			res.add(Violation{
				Severity: Warning,
				Code:     CodeNoConnectUsed,
				Pin:      pin.ID(),
				Net:      pin.Net().Name(),
				Message:  fmt.Sprintf("no-connect pin is attached to net %s", pin.Net().Name()),
			})
		}
	}
}
