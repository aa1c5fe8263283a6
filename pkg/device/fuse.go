package device

import (
	"fmt"
	"math"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Fuse conducts like a plain resistance until the magnitude of its
// current exceeds the rating. Blowing is detected after the solve and
// recorded on the result; a fuse that enters the analysis already
// blown stamps nothing.
type Fuse struct {
	BaseDevice
	resistance float64
	maxCurrent float64
	blown      bool
}

var _ Breaker = (*Fuse)(nil)

func NewFuse(name string, resistance, maxCurrent float64, blown bool) *Fuse {
	return &Fuse{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		resistance: resistance,
		maxCurrent: maxCurrent,
		blown:      blown,
	}
}

func (f *Fuse) GetKind() circuit.Kind { return circuit.KindFuse }

func (f *Fuse) GetResistance() float64 { return f.resistance }

func (f *Fuse) GetMaxCurrent() float64 { return f.maxCurrent }

func (f *Fuse) IsBlown() bool { return f.blown }

// Overloaded reports whether the given branch current would blow the
// fuse. The comparison is on magnitude; direction does not matter.
func (f *Fuse) Overloaded(current float64) bool {
	return math.Abs(current) > f.maxCurrent
}

func (f *Fuse) Stamp(m matrix.DeviceMatrix) error {
	if len(f.Nodes) != 2 {
		return fmt.Errorf("fuse %s: requires exactly 2 nodes", f.Name)
	}
	if f.blown {
		return nil
	}

	n1, n2 := f.Nodes[0], f.Nodes[1]
	g := 1.0 / f.resistance

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

func (f *Fuse) GetCurrent(voltages []float64) float64 {
	if f.blown {
		return 0
	}
	v1 := nodeVoltage(voltages, f.Nodes[0])
	v2 := nodeVoltage(voltages, f.Nodes[1])
	return (v1 - v2) / f.resistance
}
