package perf

// Matrix is a flat row-major matrix: element (r, c) lives at r*Cols+c.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

func (m *Matrix) At(r, c int) float64     { return m.Data[r*m.Cols+c] }
func (m *Matrix) Set(r, c int, v float64) { m.Data[r*m.Cols+c] = v }

// SumRowMajor walks the backing slice in storage order: unit stride,
// sequential cache lines.
func SumRowMajor(m *Matrix) float64 {
	sum := 0.0
	for r := 0; r < m.Rows; r++ {
		base := r * m.Cols
		for c := 0; c < m.Cols; c++ {
			sum += m.Data[base+c]
		}
	}
	return sum
}

// SumColMajor walks columns first: stride Cols between consecutive
// reads, touching a new cache line almost every access once the matrix
// outgrows the cache.
func SumColMajor(m *Matrix) float64 {
	sum := 0.0
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			sum += m.Data[r*m.Cols+c]
		}
	}
	return sum
}
