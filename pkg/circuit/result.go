package circuit

// Status tells zero results apart: a circuit can legitimately carry no
// current, or the analysis may have bailed out.
type Status int

const (
	StatusOK       Status = iota
	StatusEmpty           // no components in the snapshot
	StatusSingular        // degenerate topology, zeros reported by policy
	StatusFailed          // analysis aborted, see ValidationErrors
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusSingular:
		return "singular"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ComponentUpdate carries the values analysis computed for one
// component. Current is the flow through the component from terminal 0
// to terminal 1.
type ComponentUpdate struct {
	Current    float64 `json:"current"`
	Brightness float64 `json:"brightness,omitempty"`
	Reading    float64 `json:"reading,omitempty"`
	Blown      bool    `json:"blown,omitempty"`
}

// PowerBreakdown aggregates generation and dissipation across the
// circuit. Efficiency is consumed over generated in percent, and both
// ratios are zero when nothing generates.
type PowerBreakdown struct {
	Generated    float64            `json:"generated"`
	Consumed     float64            `json:"consumed"`
	Efficiency   float64            `json:"efficiency"`
	PowerFactor  float64            `json:"powerFactor"`
	PerComponent map[string]float64 `json:"perComponent,omitempty"`
}

// Result is the immutable outcome of one analysis tick. The caller owns
// the snapshot; merging computed values back is done with Apply, never
// by mutation from inside the engine.
type Result struct {
	Status           Status                     `json:"status"`
	TotalVoltage     float64                    `json:"totalVoltage"`
	TotalCurrent     float64                    `json:"totalCurrent"`
	TotalResistance  float64                    `json:"totalResistance"`
	TotalPower       float64                    `json:"totalPower"`
	IsShortCircuit   bool                       `json:"isShortCircuit"`
	FuseBlown        bool                       `json:"fuseBlown"`
	KCLValid         bool                       `json:"kclValid"`
	KVLValid         bool                       `json:"kvlValid"`
	ValidationErrors []string                   `json:"validationErrors,omitempty"`
	NodeVoltages     []float64                  `json:"nodeVoltages,omitempty"`
	Updates          map[string]ComponentUpdate `json:"updates,omitempty"`
	Power            PowerBreakdown             `json:"power"`
}

// Apply folds the result over prev and returns the snapshot for the
// next tick. prev is left untouched: every returned component carries a
// fresh property bag with the computed values merged in. Feeding the
// returned snapshot into the next analysis is how a blown fuse becomes
// an open circuit.
func (r *Result) Apply(prev []Component) []Component {
	next := make([]Component, len(prev))
	for i, c := range prev {
		props := c.Props.Clone()
		if props == nil {
			props = make(Properties)
		}
		if u, ok := r.Updates[c.ID]; ok {
			props["current"] = u.Current
			switch c.Kind {
			case KindBulb:
				props["brightness"] = u.Brightness
			case KindAmmeter, KindVoltmeter:
				props["reading"] = u.Reading
			case KindFuse:
				props["isBlown"] = u.Blown
			}
		}
		next[i] = Component{ID: c.ID, Kind: c.Kind, Props: props}
	}
	return next
}
