package core

import "math"

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix4 {
	m := IdentityMatrix()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix4 {
	m := IdentityMatrix()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX rotates around the X axis (right-handed, radians)
func RotationX(radians float64) Matrix4 {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := IdentityMatrix()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY rotates around the Y axis (right-handed, radians)
func RotationY(radians float64) Matrix4 {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := IdentityMatrix()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ rotates around the Z axis (right-handed, radians)
func RotationZ(radians float64) Matrix4 {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := IdentityMatrix()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := IdentityMatrix()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Chain composes transforms in application order: transforms[0] acts on a
// point first. Chain(a, b, c) equals c.Multiply(b).Multiply(a).
func Chain(transforms ...Matrix4) Matrix4 {
	result := IdentityMatrix()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}
