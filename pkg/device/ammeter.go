package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Ammeter sits in series with the branch it measures, so its shunt
// resistance must stay small enough not to disturb the reading.
type Ammeter struct {
	BaseDevice
	resistance float64
}

func NewAmmeter(name string, resistance float64) *Ammeter {
	return &Ammeter{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
	}
}

func (a *Ammeter) GetKind() circuit.Kind { return circuit.KindAmmeter }

func (a *Ammeter) GetResistance() float64 { return a.resistance }

func (a *Ammeter) Stamp(m matrix.DeviceMatrix) error {
	if len(a.Nodes) != 2 {
		return fmt.Errorf("ammeter %s: requires exactly 2 nodes", a.Name)
	}

	n1, n2 := a.Nodes[0], a.Nodes[1]
	g := 1.0 / a.resistance

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

func (a *Ammeter) GetCurrent(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, a.Nodes[0])
	v2 := nodeVoltage(voltages, a.Nodes[1])
	return (v1 - v2) / a.resistance
}

// GetReading is the displayed value, which for an ammeter is just the
// branch current through it.
func (a *Ammeter) GetReading(voltages []float64) float64 {
	return a.GetCurrent(voltages)
}
