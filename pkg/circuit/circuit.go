// Package circuit holds the snapshot types the engine consumes and the
// result types it produces. A snapshot is a component list plus a
// connection list; both are treated as immutable, and each analysis
// tick returns a fresh Result the caller folds back with Result.Apply.
package circuit

type Kind string

const (
	KindBattery   Kind = "battery"
	KindResistor  Kind = "resistor"
	KindBulb      Kind = "bulb"
	KindSwitch    Kind = "switch"
	KindFuse      Kind = "fuse"
	KindWire      Kind = "wire"
	KindCapacitor Kind = "capacitor"
	KindInductor  Kind = "inductor"
	KindAmmeter   Kind = "ammeter"
	KindVoltmeter Kind = "voltmeter"
)

var kinds = map[Kind]bool{
	KindBattery:   true,
	KindResistor:  true,
	KindBulb:      true,
	KindSwitch:    true,
	KindFuse:      true,
	KindWire:      true,
	KindCapacitor: true,
	KindInductor:  true,
	KindAmmeter:   true,
	KindVoltmeter: true,
}

func (k Kind) Valid() bool { return kinds[k] }

// Component is one element of the snapshot. Every component has two
// terminals, numbered 0 and 1; for batteries terminal 0 is the negative
// pole and terminal 1 the positive pole.
type Component struct {
	ID    string
	Kind  Kind
	Props Properties
}

// Connection joins two component terminals into one electrical node.
type Connection struct {
	From TerminalRef
	To   TerminalRef
}

// Properties is the open property bag attached to a component.
// Well-known input keys: "voltage", "internalResistance", "resistance",
// "isOn", "isBlown", "maxCurrent", "maxPower", "capacitance",
// "inductance". Computed keys ("current", "brightness", "reading") are
// written by Result.Apply and ignored as inputs.
type Properties map[string]any

func (p Properties) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (p Properties) Bool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}

func (p Properties) FloatOr(key string, def float64) float64 {
	if v, ok := p.Float(key); ok {
		return v
	}
	return def
}

func (p Properties) BoolOr(key string, def bool) bool {
	if v, ok := p.Bool(key); ok {
		return v
	}
	return def
}

// Clone returns an independent copy of the bag.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
