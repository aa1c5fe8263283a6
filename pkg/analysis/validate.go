package analysis

import (
	"fmt"
	"math"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/device"
)

// runValidators checks the solved circuit against Kirchhoff's laws and
// the overcurrent ceilings, recording violations on the result. The
// checks are advisory: a violation never aborts the tick.
func runValidators(result *circuit.Result, components []circuit.Component, models []device.Model, nodes *circuit.NodeMap, currents map[string]float64, supply float64, opts Options) {
	checkKCL(result, models, nodes, currents, opts.KCLTolerance)
	checkKVL(result, components, models, currents, supply, opts.KVLTolerance)
	checkOvercurrent(result, models, currents, opts.OvercurrentLimit)
}

// checkKCL sums the signed branch currents at every non-ground node.
// Current flows from terminal 0 to terminal 1, so it leaves the node
// behind terminal 0 and arrives at the node behind terminal 1.
func checkKCL(result *circuit.Result, models []device.Model, nodes *circuit.NodeMap, currents map[string]float64, tol float64) {
	residual := make([]float64, nodes.NumNodes())
	for _, m := range models {
		n := m.GetNodes()
		i := currents[m.GetName()]
		if n[0] > 0 && n[0] < len(residual) {
			residual[n[0]] -= i
		}
		if n[1] > 0 && n[1] < len(residual) {
			residual[n[1]] += i
		}
	}

	for node := 1; node < len(residual); node++ {
		if math.Abs(residual[node]) > tol {
			result.KCLValid = false
			result.ValidationErrors = append(result.ValidationErrors,
				fmt.Sprintf("KCL violation at node %d: residual %.6g A", node, residual[node]))
		}
	}
}

// checkKVL compares total EMF against the summed resistive drops. The
// comparison treats the circuit as one series loop, so parallel
// branches can trip it even when every loop individually balances.
func checkKVL(result *circuit.Result, components []circuit.Component, models []device.Model, currents map[string]float64, supply float64, tol float64) {
	var emf float64
	for _, c := range components {
		if c.Kind == circuit.KindBattery {
			emf += emfOf(c, supply)
		}
	}

	var drop float64
	for _, m := range models {
		r, ok := m.(device.Resistive)
		if !ok {
			continue
		}
		drop += math.Abs(currents[m.GetName()] * r.GetResistance())
	}

	if math.Abs(emf-drop) > tol {
		result.KVLValid = false
		result.ValidationErrors = append(result.ValidationErrors,
			fmt.Sprintf("KVL violation: EMF %.6g V vs voltage drop %.6g V", emf, drop))
	}
}

// checkOvercurrent flags loads past the fixed safety ceiling and fuses
// past their own rating.
func checkOvercurrent(result *circuit.Result, models []device.Model, currents map[string]float64, limit float64) {
	for _, m := range models {
		i := currents[m.GetName()]
		switch d := m.(type) {
		case *device.Resistor, *device.Bulb:
			if math.Abs(i) > limit {
				result.IsShortCircuit = true
			}
		case *device.Fuse:
			if d.Overloaded(i) {
				result.IsShortCircuit = true
			}
		}
	}
}
