package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// up is the world up axis used by LookAt.
var up = mgl64.Vec3{0, 1, 0}

// Spherical converts spherical coordinates to a Cartesian position. phi is
// the polar angle measured from +Y and theta the azimuth measured from +Z
// toward +X.
func Spherical(radius, phi, theta float64) mgl64.Vec3 {
	s := math.Sin(phi) * radius
	return mgl64.Vec3{s * math.Sin(theta), math.Cos(phi) * radius, s * math.Cos(theta)}
}

// Cylindrical converts cylindrical coordinates around the Y axis to a
// Cartesian position. theta is measured from +Z toward +X.
func Cylindrical(radius, theta, y float64) mgl64.Vec3 {
	return mgl64.Vec3{radius * math.Sin(theta), y, radius * math.Cos(theta)}
}

// LookAt returns the XYZ Euler rotation that turns an object at eye so its
// +Z axis points at target, keeping +Y as close to world up as possible.
//
// If target equals eye the object keeps facing +Z. If the direction is
// parallel to world up the direction is nudged off the axis first.
func LookAt(eye, target mgl64.Vec3) mgl64.Vec3 {
	return EulerXYZ(LookAtMatrix(eye, target))
}

// LookAtMatrix returns the rotation matrix used by [LookAt]. Its columns are
// the object's right, up and forward axes.
func LookAtMatrix(eye, target mgl64.Vec3) mgl64.Mat3 {
	z := target.Sub(eye)
	if z.Len() == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() == 0 {
		if math.Abs(up.Z()) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat3FromCols(x, y, z)
}

// EulerXYZ decomposes a pure rotation matrix into XYZ Euler angles, so that
// m == Rx(a.X) * Ry(a.Y) * Rz(a.Z).
func EulerXYZ(m mgl64.Mat3) mgl64.Vec3 {
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	var a mgl64.Vec3
	a[1] = math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		a[0] = math.Atan2(-m23, m33)
		a[2] = math.Atan2(-m12, m11)
	} else {
		a[0] = math.Atan2(m32, m22)
	}
	return a
}

// RotationMatrix composes XYZ Euler angles back into a rotation matrix.
func RotationMatrix(a mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DX(a.X()).Mul3(mgl64.Rotate3DY(a.Y())).Mul3(mgl64.Rotate3DZ(a.Z()))
}
