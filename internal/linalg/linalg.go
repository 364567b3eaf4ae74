// Package linalg holds the small set of dense vector and matrix operations
// the simulator needs. It is not a general purpose linear algebra package.
package linalg

import "math"

type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// IsFinite reports whether every entry is neither NaN nor ±Inf.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Sum() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum
}

func (v Vector) Add(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		if i < len(other) {
			result[i] = v[i] + other[i]
		} else {
			result[i] = v[i]
		}
	}
	return result
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

// MaxAbsDiff returns max_i |v[i] - other[i]|. Lengths must match; a
// mismatch yields +Inf so that callers never treat it as converged.
func (v Vector) MaxAbsDiff(other Vector) float64 {
	if len(v) != len(other) {
		return math.Inf(1)
	}
	d := 0.0
	for i := range v {
		if a := math.Abs(v[i] - other[i]); a > d {
			d = a
		}
	}
	return d
}

// MaxRoundPlaces is the finest decimal precision Round applies. A float64
// carries 15 to 17 significant digits, so finer rounding is a no-op.
const MaxRoundPlaces = 15

// Round returns a copy with every entry rounded half away from zero to the
// given number of decimal places. Entries whose scaled value is not finite,
// and every entry when places exceeds MaxRoundPlaces, are copied unchanged.
func (v Vector) Round(places int) Vector {
	if places > MaxRoundPlaces {
		return v.Clone()
	}
	scale := math.Pow(10, float64(places))
	result := make(Vector, len(v))
	for i, x := range v {
		scaled := x * scale
		if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
			result[i] = x
			continue
		}
		result[i] = math.Round(scaled) / scale
	}
	return result
}

// Matrix is a dense row-major matrix: m[i][j] is row i, column j.
type Matrix [][]float64

func (m Matrix) Rows() int { return len(m) }

// Cols returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsRectangular reports whether every row has the same length.
func (m Matrix) IsRectangular() bool {
	cols := m.Cols()
	for _, row := range m {
		if len(row) != cols {
			return false
		}
	}
	return true
}

func (m Matrix) IsSquare() bool {
	return len(m) > 0 && m.IsRectangular() && m.Cols() == m.Rows()
}

func (m Matrix) IsFinite() bool {
	for _, row := range m {
		if !Vector(row).IsFinite() {
			return false
		}
	}
	return true
}

func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = Vector(row).Clone()
	}
	return c
}

// ColumnSums returns the sum of each column. The matrix must be rectangular.
func (m Matrix) ColumnSums() Vector {
	sums := make(Vector, m.Cols())
	for _, row := range m {
		for j, x := range row {
			sums[j] += x
		}
	}
	return sums
}

// MulVec computes m·x into dst, which must have len(m) entries. It panics if
// the shapes disagree; callers validate shapes up front.
func (m Matrix) MulVec(dst, x Vector) {
	if len(dst) < len(m) {
		panic("linalg: destination vector too small")
	}
	for i, row := range m {
		if len(row) != len(x) {
			panic("linalg: row length does not match vector length")
		}
		sum := 0.0
		for j, a := range row {
			sum += a * x[j]
		}
		dst[i] = sum
	}
}
