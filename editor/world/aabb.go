// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

type AABB struct {
	Vec2f
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func AABBFrom(x, y, width, height float32) AABB {
	return AABB{
		Vec2f:  Vec2f{X: x, Y: y},
		Width:  width,
		Height: height,
	}
}

// AABBOf returns the bounding box of a set of points.
// The zero AABB is returned for an empty set.
func AABBOf(points ...Vec2f) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return AABB{Vec2f: min, Width: max.X - min.X, Height: max.Y - min.Y}
}

// Expand grows the box by margin on all four sides.
func (a AABB) Expand(margin float32) AABB {
	a.X -= margin
	a.Y -= margin
	a.Width += margin * 2
	a.Height += margin * 2
	return a
}

// Intersects a and b are intersecting
func (a AABB) Intersects(b AABB) bool {
	return a.X+a.Width >= b.X && a.X <= b.X+b.Width && a.Y+a.Height >= b.Y && a.Y <= b.Height+b.Y
}

// Contains a fully contains b
func (a AABB) Contains(b AABB) bool {
	return a.X <= b.X && a.Y <= b.Y && a.X+a.Width >= b.X+b.Width && a.Y+a.Height >= b.Y+b.Height
}
