package device

import (
	"fmt"

	"github.com/voltlab/dcsim/internal/consts"
	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Model is the solver-facing view of a component: a Norton-equivalent
// stamp plus current recovery from the solved node voltages. Nodes hold
// the two resolved node indices, terminal 0 first; index 0 is ground.
type Model interface {
	GetName() string
	GetKind() circuit.Kind
	GetNodes() []int
	SetNodes(nodes []int)
	Stamp(m matrix.DeviceMatrix) error
	// GetCurrent reports the branch current through the device from
	// terminal 0 to terminal 1, given node-indexed voltages.
	GetCurrent(voltages []float64) float64
}

// Source is any device that drives the circuit.
type Source interface {
	Model
	GetEMF() float64
}

// Resistive devices drop voltage across a fixed resistance. Validators
// use the resistance for the dissipative loop sum.
type Resistive interface {
	Model
	GetResistance() float64
}

// Breaker devices open themselves on overcurrent.
type Breaker interface {
	Model
	GetMaxCurrent() float64
	IsBlown() bool
}

type BaseDevice struct {
	Name  string
	Nodes []int
}

func (d *BaseDevice) GetName() string { return d.Name }

func (d *BaseDevice) GetNodes() []int { return d.Nodes }

func (d *BaseDevice) SetNodes(nodes []int) { d.Nodes = nodes }

// New builds the solver model for one component. supply is the ambient
// source voltage, used for batteries without an explicit "voltage"
// property.
func New(c circuit.Component, supply float64) (Model, error) {
	switch c.Kind {
	case circuit.KindBattery:
		emf := c.Props.FloatOr("voltage", supply)
		rint := positiveOr(c.Props.FloatOr("internalResistance", consts.BatteryInternalResistance), consts.BatteryInternalResistance)
		return NewBattery(c.ID, emf, rint), nil
	case circuit.KindResistor:
		return NewResistor(c.ID, resistanceOr(c.Props, consts.DefaultResistance)), nil
	case circuit.KindBulb:
		maxPower := positiveOr(c.Props.FloatOr("maxPower", consts.BulbMaxPower), consts.BulbMaxPower)
		return NewBulb(c.ID, resistanceOr(c.Props, consts.DefaultResistance), maxPower), nil
	case circuit.KindSwitch:
		return NewSwitch(c.ID, resistanceOr(c.Props, consts.ContactResistance), c.Props.BoolOr("isOn", false)), nil
	case circuit.KindFuse:
		rating := positiveOr(c.Props.FloatOr("maxCurrent", consts.FuseMaxCurrent), consts.FuseMaxCurrent)
		return NewFuse(c.ID, resistanceOr(c.Props, consts.ContactResistance), rating, c.Props.BoolOr("isBlown", false)), nil
	case circuit.KindWire:
		return NewWire(c.ID, resistanceOr(c.Props, consts.ContactResistance)), nil
	case circuit.KindCapacitor:
		return NewCapacitor(c.ID, c.Props.FloatOr("capacitance", 0)), nil
	case circuit.KindInductor:
		return NewInductor(c.ID, c.Props.FloatOr("inductance", 0), resistanceOr(c.Props, consts.InductorResistance)), nil
	case circuit.KindAmmeter:
		return NewAmmeter(c.ID, resistanceOr(c.Props, consts.AmmeterResistance)), nil
	case circuit.KindVoltmeter:
		return NewVoltmeter(c.ID, resistanceOr(c.Props, consts.VoltmeterResistance)), nil
	}
	return nil, fmt.Errorf("unknown component kind %q", c.Kind)
}

// resistanceOr reads the "resistance" property, falling back to def for
// a missing or non-positive value, so stamping and current recovery
// always divide by the same positive resistance.
func resistanceOr(p circuit.Properties, def float64) float64 {
	return positiveOr(p.FloatOr("resistance", def), def)
}

func positiveOr(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func nodeVoltage(voltages []float64, node int) float64 {
	if node <= 0 || node >= len(voltages) { // ground or invalid node
		return 0
	}
	return voltages[node]
}
