package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Voltmeter bridges the two points it measures with a very large
// resistance, drawing a negligible current from the circuit under test.
type Voltmeter struct {
	BaseDevice
	resistance float64
}

func NewVoltmeter(name string, resistance float64) *Voltmeter {
	return &Voltmeter{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
	}
}

func (v *Voltmeter) GetKind() circuit.Kind { return circuit.KindVoltmeter }

func (v *Voltmeter) GetResistance() float64 { return v.resistance }

func (v *Voltmeter) Stamp(m matrix.DeviceMatrix) error {
	if len(v.Nodes) != 2 {
		return fmt.Errorf("voltmeter %s: requires exactly 2 nodes", v.Name)
	}

	n1, n2 := v.Nodes[0], v.Nodes[1]
	g := 1.0 / v.resistance

	if n1 != 0 {
		m.AddElement(n1, n1, g)
		if n2 != 0 {
			m.AddElement(n1, n2, -g)
		}
	}
	if n2 != 0 {
		if n1 != 0 {
			m.AddElement(n2, n1, -g)
		}
		m.AddElement(n2, n2, g)
	}

	return nil
}

func (v *Voltmeter) GetCurrent(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, v.Nodes[0])
	v2 := nodeVoltage(voltages, v.Nodes[1])
	return (v1 - v2) / v.resistance
}

// GetReading reports the potential difference across the probes,
// terminal 0 relative to terminal 1.
func (v *Voltmeter) GetReading(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, v.Nodes[0])
	v2 := nodeVoltage(voltages, v.Nodes[1])
	return v1 - v2
}
