package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Switch is a contact resistance when closed and an open circuit when
// not. An open switch stamps nothing at all, so every branch in series
// with it ends up currentless.
type Switch struct {
	BaseDevice
	resistance float64
	on         bool
}

func NewSwitch(name string, resistance float64, on bool) *Switch {
	return &Switch{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
		on:         on,
	}
}

func (s *Switch) GetKind() circuit.Kind { return circuit.KindSwitch }

func (s *Switch) GetResistance() float64 { return s.resistance }

func (s *Switch) IsOn() bool { return s.on }

func (s *Switch) Stamp(m matrix.DeviceMatrix) error {
	if len(s.Nodes) != 2 {
		return fmt.Errorf("switch %s: requires exactly 2 nodes", s.Name)
	}
	if !s.on {
		return nil
	}

	n1, n2 := s.Nodes[0], s.Nodes[1]
	g := 1.0 / s.resistance

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

func (s *Switch) GetCurrent(voltages []float64) float64 {
	if !s.on {
		return 0
	}
	v1 := nodeVoltage(voltages, s.Nodes[0])
	v2 := nodeVoltage(voltages, s.Nodes[1])
	return (v1 - v2) / s.resistance
}
