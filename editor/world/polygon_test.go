// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"testing"

	"github.com/chewxy/math32"
)

var square = Polygon{
	{X: -1, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
}

func TestPolygon_Contains(t *testing.T) {
	tests := []struct {
		point  Vec2f
		inside bool
	}{
		{Vec2f{X: 0, Y: 0}, true},
		{Vec2f{X: 0.9, Y: -0.9}, true},
		{Vec2f{X: 1.1, Y: 0}, false},
		{Vec2f{X: 0, Y: -2}, false},
		{Vec2f{X: -5, Y: 5}, false},
	}

	for _, test := range tests {
		if got := square.Contains(test.point); got != test.inside {
			t.Error("Contains", test.point, "expected", test.inside, "got", got)
		}
	}
}

func TestPolygon_DistanceSquared(t *testing.T) {
	// Center of the unit square is 1 away from every edge.
	if d := square.DistanceSquared(Vec2f{}); math32.Abs(d-1) > 1e-6 {
		t.Error("center distance squared expected 1 got", d)
	}

	// Outside, closest to the right edge.
	if d := square.DistanceSquared(Vec2f{X: 3, Y: 0}); math32.Abs(d-4) > 1e-6 {
		t.Error("outside distance squared expected 4 got", d)
	}

	// Closest to a corner.
	if d := square.DistanceSquared(Vec2f{X: 2, Y: 2}); math32.Abs(d-2) > 1e-6 {
		t.Error("corner distance squared expected 2 got", d)
	}
}

func TestSegmentDistanceSquared(t *testing.T) {
	a := Vec2f{X: 0, Y: 0}
	b := Vec2f{X: 10, Y: 0}

	if d := SegmentDistanceSquared(a, b, Vec2f{X: 5, Y: 3}); math32.Abs(d-9) > 1e-6 {
		t.Error("perpendicular distance squared expected 9 got", d)
	}
	// Beyond the segment end, the endpoint is closest.
	if d := SegmentDistanceSquared(a, b, Vec2f{X: 13, Y: 4}); math32.Abs(d-25) > 1e-6 {
		t.Error("endpoint distance squared expected 25 got", d)
	}
	// Degenerate segment.
	if d := SegmentDistanceSquared(a, a, Vec2f{X: 0, Y: 2}); math32.Abs(d-4) > 1e-6 {
		t.Error("degenerate segment distance squared expected 4 got", d)
	}
}

func TestPolylineDistanceSquared(t *testing.T) {
	line := []Vec2f{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	// The implicit closing edge of a polygon must not exist for a polyline:
	// (0, 5) is 5 from the first segment, not 0 from a closing edge.
	if d := PolylineDistanceSquared(line, Vec2f{X: 0, Y: 5}); math32.Abs(d-25) > 1e-6 {
		t.Error("open polyline distance squared expected 25 got", d)
	}
}
