// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// Vec3f is a world-space position with Y up.
type Vec3f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// XZ projects onto the horizontal plane.
func (vec Vec3f) XZ() Vec2f {
	return Vec2f{X: vec.X, Y: vec.Z}
}

func (vec Vec3f) Mul(factor float32) Vec3f {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	return vec
}

func (vec Vec3f) Add(otherVec Vec3f) Vec3f {
	vec.X += otherVec.X
	vec.Y += otherVec.Y
	vec.Z += otherVec.Z
	return vec
}

func (vec Vec3f) Sub(otherVec Vec3f) Vec3f {
	vec.X -= otherVec.X
	vec.Y -= otherVec.Y
	vec.Z -= otherVec.Z
	return vec
}
