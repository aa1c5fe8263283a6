package device

import (
	"fmt"
	"math"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Bulb is a resistor that reports brightness as the fraction of its
// rated power it currently dissipates, clamped to [0, 1].
type Bulb struct {
	BaseDevice
	resistance float64
	maxPower   float64
}

func NewBulb(name string, resistance, maxPower float64) *Bulb {
	return &Bulb{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
		maxPower:   maxPower,
	}
}

func (b *Bulb) GetKind() circuit.Kind { return circuit.KindBulb }

func (b *Bulb) GetResistance() float64 { return b.resistance }

func (b *Bulb) GetMaxPower() float64 { return b.maxPower }

func (b *Bulb) Stamp(m matrix.DeviceMatrix) error {
	if len(b.Nodes) != 2 {
		return fmt.Errorf("bulb %s: requires exactly 2 nodes", b.Name)
	}

	n1, n2 := b.Nodes[0], b.Nodes[1]
	g := 1.0 / b.resistance

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

func (b *Bulb) GetCurrent(voltages []float64) float64 {
	v1 := nodeVoltage(voltages, b.Nodes[0])
	v2 := nodeVoltage(voltages, b.Nodes[1])
	return (v1 - v2) / b.resistance
}

// GetBrightness maps dissipated power onto [0, 1] against the rated
// maximum.
func (b *Bulb) GetBrightness(current float64) float64 {
	power := math.Abs(current * current * b.resistance)
	return math.Min(1.0, power/b.maxPower)
}
