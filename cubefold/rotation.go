// SPDX-License-Identifier: MIT

package cubefold

import "fmt"

// Vec3 is an integer 3D vector in either a face-local or the world frame.
type Vec3 [3]int

// Dot returns the scalar product of v and o.
func (v Vec3) Dot(o Vec3) int {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// IsAxis reports whether v is one of the six canonical ±X/±Y/±Z unit vectors.
func (v Vec3) IsAxis() bool {
	nonzero := 0
	for _, x := range v {
		switch x {
		case 0:
		case 1, -1:
			nonzero++
		default:
			return false
		}
	}
	return nonzero == 1
}

// String formats v as "(x,y,z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v[0], v[1], v[2])
}

// Rotation is a 3×3 integer matrix stored row-major. The matrices built by
// this package are signed permutation matrices with determinant 1.
type Rotation [3][3]int

// Identity is the orientation of the root face.
var Identity = Rotation{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Fold rotations express a neighbor's local frame in the current face's frame,
// one per net direction. Crossing east, local x bends into +z and the
// neighbor's normal becomes +x; the other three follow by symmetry.
var (
	// FoldRight is the neighbor at anchor + (W, 0).
	FoldRight = Rotation{
		{0, 0, -1},
		{0, 1, 0},
		{1, 0, 0},
	}
	// FoldLeft is the neighbor at anchor - (W, 0).
	FoldLeft = FoldRight.Transpose()
	// FoldDown is the neighbor at anchor + (0, W).
	FoldDown = Rotation{
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
	}
	// FoldUp is the neighbor at anchor - (0, W).
	FoldUp = FoldDown.Transpose()
)

// Mul returns the matrix product r·o.
func (r Rotation) Mul(o Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += r[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply returns r·v.
func (r Rotation) Apply(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = r[i][0]*v[0] + r[i][1]*v[1] + r[i][2]*v[2]
	}
	return out
}

// Transpose returns rᵀ, which is also r⁻¹ for an orthonormal r.
func (r Rotation) Transpose() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = r[i][j]
		}
	}
	return out
}

// Pow returns r multiplied by itself n times; Pow(0) is Identity.
func (r Rotation) Pow(n int) Rotation {
	out := Identity
	for i := 0; i < n; i++ {
		out = out.Mul(r)
	}
	return out
}

// Det returns the determinant of r.
func (r Rotation) Det() int {
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// IsOrthonormal reports whether r·rᵀ is the identity.
func (r Rotation) IsOrthonormal() bool {
	return r.Mul(r.Transpose()) == Identity
}
