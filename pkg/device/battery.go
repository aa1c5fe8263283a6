package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Battery is an EMF in series with its internal resistance, stamped as
// the Norton pair g = 1/R_int, i_s = V/R_int. Terminal 0 is the
// negative pole, terminal 1 the positive pole.
type Battery struct {
	BaseDevice
	emf  float64
	rint float64
}

var _ Source = (*Battery)(nil)

func NewBattery(name string, emf, rint float64) *Battery {
	return &Battery{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		emf:  emf,
		rint: rint,
	}
}

func (b *Battery) GetKind() circuit.Kind { return circuit.KindBattery }

func (b *Battery) GetEMF() float64 { return b.emf }

func (b *Battery) GetInternalResistance() float64 { return b.rint }

func (b *Battery) Stamp(m matrix.DeviceMatrix) error {
	if len(b.Nodes) != 2 {
		return fmt.Errorf("battery %s: requires exactly 2 nodes", b.Name)
	}

	n1, n2 := b.Nodes[0], b.Nodes[1]
	g := 1.0 / b.rint
	is := b.emf / b.rint

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

	// The Norton source pushes current out of the positive pole.
	if n1 != 0 {
		m.AddRHS(n1, -is)
	}
	if n2 != 0 {
		m.AddRHS(n2, is)
	}

	return nil
}

// GetCurrent reports the discharge current, positive when the battery
// drives the external circuit.
func (b *Battery) GetCurrent(voltages []float64) float64 {
	dv := nodeVoltage(voltages, b.Nodes[1]) - nodeVoltage(voltages, b.Nodes[0])
	return (b.emf - dv) / b.rint
}
