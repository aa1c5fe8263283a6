package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Wire models a conductor as a tiny contact resistance instead of a
// true zero-ohm short. Keeping a finite resistance keeps the matrix
// solvable and still yields a measurable branch current.
type Wire struct {
	BaseDevice
	resistance float64
}

func NewWire(name string, resistance float64) *Wire {
	return &Wire{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
	}
}

func (w *Wire) GetKind() circuit.Kind { return circuit.KindWire }

func (w *Wire) GetResistance() float64 { return w.resistance }

func (w *Wire) Stamp(m matrix.DeviceMatrix) error {
	if len(w.Nodes) != 2 {
		return fmt.Errorf("wire %s: requires exactly 2 nodes", w.Name)
	}

	n1, n2 := w.Nodes[0], w.Nodes[1]
	g := 1.0 / w.resistance

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

func (w *Wire) GetCurrent(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, w.Nodes[0])
	v2 := nodeVoltage(voltages, w.Nodes[1])
	return (v1 - v2) / w.resistance
}
