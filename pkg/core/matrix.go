package core

// Matrix2 and Matrix3 exist only to bootstrap the Matrix4 determinant
// through cofactor expansion.
type Matrix2 [2][2]float64

// Matrix3 is a 3x3 matrix
type Matrix3 [3][3]float64

// Determinant returns ad - bc
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Equals compares elementwise within Epsilon
func (m Matrix2) Equals(other Matrix2) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !ApproxEqual(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

// Submatrix returns a copy of m with the given row and column removed
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var sub Matrix2
	r := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 3; j++ {
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
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor, negated when row+col is odd
func (m Matrix3) Cofactor(row, col int) float64 {
	if (row+col)%2 == 0 {
		return m.Minor(row, col)
	}
	return -m.Minor(row, col)
}

// Determinant expands along the first column
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for i := 0; i < 3; i++ {
		det += m.Cofactor(i, 0) * m[i][0]
	}
	return det
}

// Equals compares elementwise within Epsilon
func (m Matrix3) Equals(other Matrix3) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !ApproxEqual(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}
