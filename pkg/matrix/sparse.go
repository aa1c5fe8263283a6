package matrix

import (
	"github.com/edp1096/sparse"
)

// SparseMatrix backs System with the Sparse 1.3 LU factorization port.
// Same node-indexed contract as DenseMatrix: rhs and solution slices
// are 1-based with slot 0 reserved for ground. A failed factorization
// is reported the same way as a small pivot in the dense path, all-zero
// voltages with ok=false.
type SparseMatrix struct {
	size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewSparse(size int) *SparseMatrix {
	if size < 1 {
		size = 1
	}

	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil
	}

	return &SparseMatrix{
		size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}
}

func (m *SparseMatrix) Size() int { return m.size }

func (m *SparseMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.size || j > m.size {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *SparseMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.size {
		return
	}
	m.rhs[i] += value
}

func (m *SparseMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *SparseMatrix) Solve() ([]float64, bool) {
	err := m.matrix.Factor()
	if err != nil {
		return make([]float64, m.size+1), false
	}

	m.solution, err = m.matrix.Solve(m.rhs)
	if err != nil {
		return make([]float64, m.size+1), false
	}

	m.solution[0] = 0 // ground slot
	return m.solution, true
}

func (m *SparseMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
