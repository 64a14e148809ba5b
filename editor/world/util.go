// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp(val, minimum, maximum float32) float32 {
	return minf(maxf(val, minimum), maximum)
}

// Clamp limits val to [minimum, maximum].
func Clamp(val, minimum, maximum float32) float32 {
	return clamp(val, minimum, maximum)
}

// Smoothstep is the cubic t²(3-2t) ease applied to t in [0, 1].
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
