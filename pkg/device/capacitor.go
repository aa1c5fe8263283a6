package device

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Capacitor at DC steady state is fully charged and passes no current,
// so it contributes nothing to the conductance matrix. The capacitance
// is kept so callers can still inspect the rated value.
type Capacitor struct {
	BaseDevice
	capacitance float64
}

var _ Model = (*Capacitor)(nil)

func NewCapacitor(name string, capacitance float64) *Capacitor {
	return &Capacitor{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, 2),
		},
		capacitance: capacitance,
	}
}

func (c *Capacitor) GetKind() circuit.Kind { return circuit.KindCapacitor }

func (c *Capacitor) GetCapacitance() float64 { return c.capacitance }

func (c *Capacitor) Stamp(m matrix.DeviceMatrix) error {
	if len(c.Nodes) != 2 {
		return fmt.Errorf("capacitor %s: requires exactly 2 nodes", c.Name)
	}
	// Open circuit at DC.
	return nil
}

func (c *Capacitor) GetCurrent(voltages []float64) float64 {
	return 0
}
