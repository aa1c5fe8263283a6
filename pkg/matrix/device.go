package matrix

type DeviceMatrix interface {
	AddElement(i, j int, value float64) // 1-based indexing, ground (0) never passed
	AddRHS(i int, value float64)
}

// System is a solvable conductance matrix with its current vector.
// Node index 0 is ground and has no row or column; the solution slice
// returned by Solve is indexed by node, with solution[0] fixed at 0 V.
type System interface {
	DeviceMatrix
	Size() int
	Clear()
	Solve() (solution []float64, ok bool)
	Destroy()
}

// NewSystem builds a system for a circuit with numNodes nodes, ground
// included. The matrix gets max(1, numNodes-1) rows so a ground-only
// circuit still has a well-formed, if singular, system.
func NewSystem(numNodes int, useSparse bool) System {
	size := numNodes - 1
	if size < 1 {
		size = 1
	}
	if useSparse {
		if m := NewSparse(size); m != nil {
			return m
		}
		// sparse allocation failed, dense always works
	}
	return NewDense(size)
}
