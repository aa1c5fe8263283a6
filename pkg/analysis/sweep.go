package analysis

import (
	"fmt"

	"github.com/voltlab/dcsim/pkg/circuit"
)

// Sweep steps one battery's EMF across [Start, Stop] and runs a full
// analysis per point. The snapshot is overlaid, never mutated: each
// point analyzes a copy whose swept battery carries that point's EMF.
// An empty Source sweeps the ambient supply voltage instead, which
// reaches every battery without an explicit "voltage" property.
type Sweep struct {
	Source string // battery ID whose "voltage" property is swept
	Start  float64
	Stop   float64
	Step   float64
}

// Point is one sweep sample.
type Point struct {
	Value  float64         `json:"value"`
	Result *circuit.Result `json:"result"`
}

func (s Sweep) Run(components []circuit.Component, connections []circuit.Connection, supplyVoltage float64) ([]Point, error) {
	return s.RunWithOptions(components, connections, supplyVoltage, DefaultOptions())
}

func (s Sweep) RunWithOptions(components []circuit.Component, connections []circuit.Connection, supplyVoltage float64, opts Options) ([]Point, error) {
	if s.Step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %g", s.Step)
	}
	if s.Stop < s.Start {
		return nil, fmt.Errorf("sweep stop %g below start %g", s.Stop, s.Start)
	}

	idx := -1
	if s.Source != "" {
		for i, c := range components {
			if c.ID == s.Source && c.Kind == circuit.KindBattery {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("source %s not found", s.Source)
		}
	}

	var points []Point
	for v := s.Start; v <= s.Stop; v += s.Step {
		overlay, supply := components, supplyVoltage
		if idx < 0 {
			supply = v
		} else {
			overlay = make([]circuit.Component, len(components))
			copy(overlay, components)

			props := components[idx].Props.Clone()
			if props == nil {
				props = make(circuit.Properties)
			}
			props["voltage"] = v
			overlay[idx] = circuit.Component{ID: components[idx].ID, Kind: components[idx].Kind, Props: props}
		}

		points = append(points, Point{
			Value:  v,
			Result: AnalyzeWithOptions(overlay, connections, supply, opts),
		})
	}

	return points, nil
}
