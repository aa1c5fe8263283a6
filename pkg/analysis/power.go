package analysis

import (
	"math"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/device"
)

// powerBreakdown splits per-component power into generation and
// dissipation. Battery power is EMF times branch current, so a
// discharging battery generates and a charging one consumes.
// Dissipative types burn I²R. Efficiency and power factor stay zero
// when nothing generates.
func powerBreakdown(models []device.Model, currents map[string]float64) circuit.PowerBreakdown {
	pb := circuit.PowerBreakdown{PerComponent: make(map[string]float64, len(models))}

	for _, m := range models {
		i := currents[m.GetName()]
		switch d := m.(type) {
		case device.Source:
			p := d.GetEMF() * i
			pb.PerComponent[m.GetName()] = p
			if p > 0 {
				pb.Generated += p
			} else {
				pb.Consumed += math.Abs(p)
			}
		case device.Resistive:
			p := i * i * d.GetResistance()
			pb.PerComponent[m.GetName()] = p
			pb.Consumed += p
		default:
			pb.PerComponent[m.GetName()] = 0
		}
	}

	if pb.Generated > 0 {
		pb.Efficiency = pb.Consumed / pb.Generated * 100
		pb.PowerFactor = pb.Consumed / pb.Generated
	}

	return pb
}
