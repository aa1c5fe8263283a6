// Package analysis runs DC nodal analysis over a circuit snapshot. One
// call is one simulation tick: components and connections go in, an
// immutable Result comes out, and the caller folds the result back into
// the next snapshot. The package keeps no state between calls, so
// concurrent ticks over separate snapshots are safe.
package analysis

import (
	"github.com/voltlab/dcsim/internal/consts"
)

// SolverKind selects the linear system backend.
type SolverKind int

const (
	// SolverAuto uses the dense solver until the node count reaches
	// Options.SparseThreshold.
	SolverAuto SolverKind = iota
	SolverDense
	SolverSparse
)

func (k SolverKind) String() string {
	switch k {
	case SolverAuto:
		return "auto"
	case SolverDense:
		return "dense"
	case SolverSparse:
		return "sparse"
	}
	return "unknown"
}

// Options holds the numeric knobs of one analysis run. Start from
// DefaultOptions; the zero value selects the auto solver but carries
// zero tolerances, which flags every circuit.
type Options struct {
	Solver           SolverKind
	SparseThreshold  int     // node count, SolverAuto only
	KCLTolerance     float64 // max node current residual (A)
	KVLTolerance     float64 // max loop voltage mismatch (V)
	OvercurrentLimit float64 // short-circuit ceiling for resistors and bulbs (A)
}

func DefaultOptions() Options {
	return Options{
		Solver:           SolverAuto,
		SparseThreshold:  consts.SparseThreshold,
		KCLTolerance:     consts.KCLTolerance,
		KVLTolerance:     consts.KVLTolerance,
		OvercurrentLimit: consts.OvercurrentLimit,
	}
}

func (o Options) useSparse(numNodes int) bool {
	switch o.Solver {
	case SolverSparse:
		return true
	case SolverAuto:
		return o.SparseThreshold > 0 && numNodes >= o.SparseThreshold
	}
	return false
}
