package symbols

import (
	"fmt"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

// Verify cross-checks a catalog part definition against the corresponding
// library symbol and returns one message per discrepancy. Hidden pins are
// power pins on global-power symbols and are not expected in the catalog.
func Verify(def circuit.PartDef, sym Symbol) []string {
	var findings []string

	libPins := make(map[string]Pin)
	for _, pin := range sym.Pins {
		if pin.Hidden {
			continue
		}
		libPins[pin.Number] = pin
	}

	seen := make(map[string]bool)
	for _, pd := range def.Pins {
		seen[pd.Number] = true
		lp, ok := libPins[pd.Number]
		if !ok {
			findings = append(findings,
				fmt.Sprintf("%s: catalog pin %s is not in the library symbol", def.LibID(), pd.Number))
			continue
		}
		if string(pd.Type) != lp.Type {
			findings = append(findings,
				fmt.Sprintf("%s: pin %s is %s in the catalog but %s in the library",
					def.LibID(), pd.Number, pd.Type, lp.Type))
		}
	}

	for _, pin := range sym.Pins {
		if pin.Hidden || seen[pin.Number] {
			continue
		}
		findings = append(findings,
			fmt.Sprintf("%s: library pin %s (%s) is missing from the catalog",
				def.LibID(), pin.Number, pin.Type))
	}

	return findings
}
