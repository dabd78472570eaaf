// Package linalg provides the small dense-matrix capability the PDE solvers
// need: build a banded system, solve it, nothing more.
package linalg

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	Rows, Cols int
	data       []float64
}

// New allocates a zero rows x cols matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Eye returns an n x n matrix with ones on the k-th diagonal: the main
// diagonal for k=0, the super-diagonal for k=1, the sub-diagonal for k=-1.
func Eye(n, k int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		j := i + k
		if j >= 0 && j < n {
			m.Set(i, j, 1)
		}
	}
	return m
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) float64 { return m.data[r*m.Cols+c] }

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) { m.data[r*m.Cols+c] = v }

// Scale multiplies every element by s and returns m.
func (m *Matrix) Scale(s float64) *Matrix {
	for i := range m.data {
		m.data[i] *= s
	}
	return m
}

// Add accumulates other into m elementwise and returns m. Dimensions must
// match.
func (m *Matrix) Add(other *Matrix) *Matrix {
	for i := range m.data {
		m.data[i] += other.data[i]
	}
	return m
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := New(m.Rows, m.Cols)
	copy(c.data, m.data)
	return c
}
