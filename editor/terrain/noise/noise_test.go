// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := New(1)
	b := New(1)

	for i := 0; i < 100; i++ {
		x := float32(i) * 1.7
		y := float32(i) * -0.3
		if a.Shade(x, y) != b.Shade(x, y) {
			t.Fatal("shade noise diverged at", i)
		}
		if a.Jitter(x, y) != b.Jitter(x, y) {
			t.Fatal("jitter noise diverged at", i)
		}
		if a.Ridge(x, y) != b.Ridge(x, y) {
			t.Fatal("ridge noise diverged at", i)
		}
	}
}

func TestGenerator_Range(t *testing.T) {
	g := NewDefault()

	for i := 0; i < 1000; i++ {
		v := g.Shade(float32(i)*0.37, float32(i)*1.13)
		if v < -1.5 || v > 1.5 {
			t.Fatal("shade noise far out of range at", i, ":", v)
		}
	}
}

func TestGenerator_Continuous(t *testing.T) {
	g := NewDefault()

	// Adjacent samples stay close; coherent noise has no jumps.
	previous := g.Shade(0, 0)
	for i := 1; i < 1000; i++ {
		v := g.Shade(float32(i)*0.1, 0)
		if math32.Abs(v-previous) > 0.5 {
			t.Fatal("shade noise discontinuity at", i, ":", previous, "->", v)
		}
		previous = v
	}
}
