package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Inductor at DC steady state behaves as its winding resistance. The
// inductance only shapes transients, so here it is carried for
// inspection and the stamp reduces to a small series resistor.
type Inductor struct {
	BaseDevice
	inductance float64
	resistance float64
}

var _ Model = (*Inductor)(nil)

func NewInductor(name string, inductance, resistance float64) *Inductor {
	return &Inductor{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		inductance: inductance,
		resistance: resistance,
	}
}

func (l *Inductor) GetKind() circuit.Kind { return circuit.KindInductor }

func (l *Inductor) GetInductance() float64 { return l.inductance }

func (l *Inductor) GetResistance() float64 { return l.resistance }

func (l *Inductor) Stamp(m matrix.DeviceMatrix) error {
	if len(l.Nodes) != 2 {
		return fmt.Errorf("inductor %s: requires exactly 2 nodes", l.Name)
	}

	n1, n2 := l.Nodes[0], l.Nodes[1]
	g := 1.0 / l.resistance

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

func (l *Inductor) GetCurrent(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, l.Nodes[0])
	v2 := nodeVoltage(voltages, l.Nodes[1])
	return (v1 - v2) / l.resistance
}
