// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// Polygon is a closed loop of vertices.
// The edge from the last vertex back to the first is implicit.
type Polygon []Vec2f

// Bounds returns the polygon's axis-aligned bounding box.
func (poly Polygon) Bounds() AABB {
	return AABBOf(poly...)
}

// Contains tests point membership with the even-odd ray casting rule.
func (poly Polygon) Contains(point Vec2f) bool {
	inside := false
	j := len(poly) - 1

	for i := 0; i < len(poly); i++ {
		a := poly[i]
		b := poly[j]

		if (a.Y > point.Y) != (b.Y > point.Y) &&
			point.X < (b.X-a.X)*(point.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}

	return inside
}

// DistanceSquared returns the minimum squared distance from point to any
// edge of the closed loop.
func (poly Polygon) DistanceSquared(point Vec2f) float32 {
	return pathDistanceSquared(poly, point, true)
}

// PolylineDistanceSquared returns the minimum squared distance from point to
// any segment of an open polyline.
func PolylineDistanceSquared(points []Vec2f, point Vec2f) float32 {
	return pathDistanceSquared(points, point, false)
}

func pathDistanceSquared(points []Vec2f, point Vec2f, closed bool) float32 {
	if len(points) == 0 {
		return 0
	}
	if len(points) == 1 {
		return point.DistanceSquared(points[0])
	}

	end := len(points) - 1
	minDistSq := point.DistanceSquared(points[0])

	for i := 0; i < end; i++ {
		if d := SegmentDistanceSquared(points[i], points[i+1], point); d < minDistSq {
			minDistSq = d
		}
	}
	if closed {
		if d := SegmentDistanceSquared(points[end], points[0], point); d < minDistSq {
			minDistSq = d
		}
	}

	return minDistSq
}

// SegmentDistanceSquared returns the squared distance from point to the
// segment ab.
func SegmentDistanceSquared(a, b, point Vec2f) float32 {
	ab := b.Sub(a)
	lengthSq := ab.LengthSquared()
	if lengthSq == 0 {
		return point.DistanceSquared(a)
	}

	t := clamp(point.Sub(a).Dot(ab)/lengthSq, 0, 1)
	return point.DistanceSquared(a.AddScaled(ab, t))
}
