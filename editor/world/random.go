// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

const (
	randMultiplier = 9301
	randIncrement  = 49297
	randModulus    = 233280
)

// Random is a small linear congruential generator.
// The same seed always produces the same sequence, which scatter placement
// relies on for reproducibility. Not suitable for anything security related.
type Random struct {
	state uint32
}

// NewRandom creates a generator from a seed.
func NewRandom(seed int64) *Random {
	return &Random{state: uint32(uint64(seed) % randModulus)}
}

// Next returns the next value in [0, 1).
func (r *Random) Next() float32 {
	r.state = (r.state*randMultiplier + randIncrement) % randModulus
	return float32(r.state) / randModulus
}

// Range returns the next value in [min, max).
func (r *Random) Range(min, max float32) float32 {
	return min + r.Next()*(max-min)
}
