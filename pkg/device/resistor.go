package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

type Resistor struct {
	BaseDevice
	resistance float64
}

func NewResistor(name string, resistance float64) *Resistor {
	return &Resistor{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
	}
}

func (r *Resistor) GetKind() circuit.Kind { return circuit.KindResistor }

func (r *Resistor) GetResistance() float64 { return r.resistance }

func (r *Resistor) Stamp(m matrix.DeviceMatrix) error {
	if len(r.Nodes) != 2 {
		return fmt.Errorf("resistor %s: requires exactly 2 nodes", r.Name)
	}

	n1, n2 := r.Nodes[0], r.Nodes[1]
	g := 1.0 / r.resistance // G = 1/R

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

// GetCurrent recovers I = V/R from the voltage drop across the device.
func (r *Resistor) GetCurrent(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, r.Nodes[0])
	v2 := nodeVoltage(voltages, r.Nodes[1])
	return (v1 - v2) / r.resistance
}
