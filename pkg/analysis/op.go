package analysis

import (
	"fmt"
	"math"

	"github.com/voltlab/dcsim/internal/consts"
	"github.com/voltlab/dcsim/pkg/circuit"
	"github.com/voltlab/dcsim/pkg/device"
	"github.com/voltlab/dcsim/pkg/matrix"
)

// Analyze runs one DC tick over the snapshot with default options.
// supplyVoltage is the EMF for batteries without a "voltage" property.
func Analyze(components []circuit.Component, connections []circuit.Connection, supplyVoltage float64) *circuit.Result {
	return AnalyzeWithOptions(components, connections, supplyVoltage, DefaultOptions())
}

// AnalyzeWithOptions is Analyze with explicit knobs. It never panics
// and never returns nil: degenerate inputs come back as zero-valued
// results with the Status field telling why.
func AnalyzeWithOptions(components []circuit.Component, connections []circuit.Connection, supplyVoltage float64, opts Options) (result *circuit.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = zeroResult(circuit.StatusFailed)
			result.ValidationErrors = []string{fmt.Sprintf("analysis aborted: %v", r)}
		}
	}()

	if len(components) == 0 {
		return zeroResult(circuit.StatusEmpty)
	}

	nodes := circuit.BuildNodeMap(components, connections)
	models, err := buildModels(components, nodes, supplyVoltage)
	if err != nil {
		result = zeroResult(circuit.StatusFailed)
		result.ValidationErrors = []string{err.Error()}
		return result
	}

	sys := matrix.NewSystem(nodes.NumNodes(), opts.useSparse(nodes.NumNodes()))
	defer sys.Destroy()

	for _, m := range models {
		if err := m.Stamp(sys); err != nil {
			result = zeroResult(circuit.StatusFailed)
			result.ValidationErrors = []string{fmt.Sprintf("stamping: %v", err)}
			return result
		}
	}

	voltages, ok := sys.Solve()
	if !ok {
		// Zeros by policy: reporting huge currents recovered from an
		// unsolved system would be worse than reporting none.
		result = zeroResult(circuit.StatusSingular)
		result.NodeVoltages = voltages
		result.Updates = buildUpdates(models, zeroCurrents(models), voltages)
		result.FuseBlown = anyBlown(result.Updates)
		return result
	}

	currents := make(map[string]float64, len(models))
	for _, m := range models {
		currents[m.GetName()] = m.GetCurrent(voltages)
	}

	result = &circuit.Result{
		Status:       circuit.StatusOK,
		KCLValid:     true,
		KVLValid:     true,
		NodeVoltages: voltages,
		Updates:      buildUpdates(models, currents, voltages),
	}
	result.FuseBlown = anyBlown(result.Updates)

	applyTotals(result, components, models, currents, supplyVoltage)
	runValidators(result, components, models, nodes, currents, supplyVoltage, opts)
	result.Power = powerBreakdown(models, currents)

	return result
}

// buildModels resolves every fully wired component into its solver
// model. A component with a floating terminal stays out of the matrix
// and carries no current.
func buildModels(components []circuit.Component, nodes *circuit.NodeMap, supply float64) ([]device.Model, error) {
	models := make([]device.Model, 0, len(components))
	for _, c := range components {
		t0 := circuit.TerminalRef{Component: c.ID, Terminal: 0}
		t1 := circuit.TerminalRef{Component: c.ID, Terminal: 1}
		if !nodes.Wired(t0) || !nodes.Wired(t1) {
			continue
		}
		m, err := device.New(c, supply)
		if err != nil {
			return nil, err
		}
		n0, _ := nodes.NodeOf(t0)
		n1, _ := nodes.NodeOf(t1)
		m.SetNodes([]int{n0, n1})
		models = append(models, m)
	}
	return models, nil
}

func buildUpdates(models []device.Model, currents map[string]float64, voltages []float64) map[string]circuit.ComponentUpdate {
	updates := make(map[string]circuit.ComponentUpdate, len(models))
	for _, m := range models {
		u := circuit.ComponentUpdate{Current: currents[m.GetName()]}
		switch d := m.(type) {
		case *device.Bulb:
			u.Brightness = d.GetBrightness(u.Current)
		case *device.Ammeter:
			u.Reading = d.GetReading(voltages)
		case *device.Voltmeter:
			u.Reading = d.GetReading(voltages)
		case *device.Fuse:
			u.Blown = d.IsBlown() || d.Overloaded(u.Current)
		}
		updates[m.GetName()] = u
	}
	return updates
}

// applyTotals fills the aggregate fields. Total voltage sums every
// battery EMF in the snapshot, wired or not; total current sums the
// branch currents of the wired batteries.
func applyTotals(result *circuit.Result, components []circuit.Component, models []device.Model, currents map[string]float64, supply float64) {
	for _, c := range components {
		if c.Kind == circuit.KindBattery {
			result.TotalVoltage += emfOf(c, supply)
		}
	}
	for _, m := range models {
		if m.GetKind() == circuit.KindBattery {
			result.TotalCurrent += currents[m.GetName()]
		}
	}
	if math.Abs(result.TotalCurrent) > consts.CurrentEpsilon {
		result.TotalResistance = result.TotalVoltage / result.TotalCurrent
	}
	result.TotalPower = result.TotalVoltage * result.TotalCurrent
}

func emfOf(c circuit.Component, supply float64) float64 {
	return c.Props.FloatOr("voltage", supply)
}

func zeroCurrents(models []device.Model) map[string]float64 {
	currents := make(map[string]float64, len(models))
	for _, m := range models {
		currents[m.GetName()] = 0
	}
	return currents
}

func anyBlown(updates map[string]circuit.ComponentUpdate) bool {
	for _, u := range updates {
		if u.Blown {
			return true
		}
	}
	return false
}

// zeroResult is the shared shape of every non-OK outcome. Validator
// flags stay true: they report found violations, not analysis health,
// and the Status field already says the run went nowhere.
func zeroResult(status circuit.Status) *circuit.Result {
	return &circuit.Result{
		Status:   status,
		KCLValid: true,
		KVLValid: true,
		Updates:  map[string]circuit.ComponentUpdate{},
	}
}
