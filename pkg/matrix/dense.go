package matrix

import (
	"math"

	"github.com/voltlab/dcsim/internal/consts"
)

// DenseMatrix solves G·v = I by Gaussian elimination with partial
// pivoting. A pivot magnitude below consts.PivotEpsilon marks the
// system singular; Solve then reports all-zero voltages with ok=false
// instead of failing. That is the documented degenerate-case policy,
// not an error condition.
type DenseMatrix struct {
	size int
	g    [][]float64
	rhs  []float64
}

func NewDense(size int) *DenseMatrix {
	if size < 1 {
		size = 1
	}
	g := make([][]float64, size)
	for i := range g {
		g[i] = make([]float64, size)
	}
	return &DenseMatrix{
		size: size,
		g:    g,
		rhs:  make([]float64, size),
	}
}

func (m *DenseMatrix) Size() int { return m.size }

func (m *DenseMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.size || j > m.size {
		return
	}
	m.g[i-1][j-1] += value
}

func (m *DenseMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.size {
		return
	}
	m.rhs[i-1] += value
}

func (m *DenseMatrix) Clear() {
	for i := range m.g {
		for j := range m.g[i] {
			m.g[i][j] = 0
		}
		m.rhs[i] = 0
	}
}

// Solve runs the elimination on copies of G and I, since forward
// elimination is destructive and the stamped system must survive
// repeated solves. The solution slice is node-indexed: solution[0] is
// ground at 0 V, solution[k] the voltage of node k.
func (m *DenseMatrix) Solve() ([]float64, bool) {
	n := m.size
	a := make([][]float64, n)
	for i := range a {
		a[i] = append([]float64(nil), m.g[i]...)
	}
	b := append([]float64(nil), m.rhs...)

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < consts.PivotEpsilon {
			return make([]float64, n+1), false
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}
		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	solution := make([]float64, n+1)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * solution[k+1]
		}
		solution[row+1] = sum / a[row][row]
	}

	return solution, true
}

func (m *DenseMatrix) Destroy() {}
