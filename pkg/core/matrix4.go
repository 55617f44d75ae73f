package core

import "fmt"

// Matrix4 is a row-major 4x4 matrix. Entries are addressed as m[row][col].
type Matrix4 [4][4]float64

// IdentityMatrix returns the 4x4 identity
func IdentityMatrix() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the row-by-column product m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return result
}

// MultiplyTuple treats t as a column vector and returns m * t
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Submatrix returns a copy of m with the given row and column removed
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var sub Matrix3
	r := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub[r][c] = m[i][j]
			c++
		}
		r++
	}
	return sub
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor, negated when row+col is odd
func (m Matrix4) Cofactor(row, col int) float64 {
	if (row+col)%2 == 0 {
		return m.Minor(row, col)
	}
	return -m.Minor(row, col)
}

// Determinant expands along the first column
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for i := 0; i < 4; i++ {
		det += m.Cofactor(i, 0) * m[i][0]
	}
	return det
}

// IsInvertible reports whether the determinant is not approximately zero
func (m Matrix4) IsInvertible() bool {
	return !ApproxEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of m. It panics if m is not invertible.
func (m Matrix4) Inverse() Matrix4 {
	det := m.Determinant()
	if ApproxEqual(det, 0) {
		panic(fmt.Sprintf("core: cannot invert singular matrix %v", m))
	}

	// Swapping (i, j) for (j, i) transposes the cofactor matrix in place.
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m.Cofactor(j, i) / det
		}
	}
	return result
}

// Equals compares elementwise within Epsilon
func (m Matrix4) Equals(other Matrix4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !ApproxEqual(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}
