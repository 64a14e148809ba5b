// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise provides the coherent noise samplers used by the terrain
// colorizer and edit operations. Each sampler is smooth, deterministic for a
// fixed seed, and returns values roughly in [-1, 1].
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Seed is the default permutation seed.
// The permutation tables are built once per Generator, never reseeded at
// sample time.
const Seed = int64(56)

const (
	// shadeFrequency is low so palette variation spans many cells.
	shadeFrequency = 0.02
	// jitterFrequency perturbs region boundaries per-cell.
	jitterFrequency = 0.1
	// ridgeFrequency is sampled in world coordinates along ridge lines.
	ridgeFrequency = 0.05
)

// Generator holds the permuted lookup tables for every noise concern.
type Generator struct {
	shade  *perlin.Perlin // colorizer band variation
	jitter *perlin.Perlin // region boundary perturbation
	ridge  *perlin.Perlin // ridge profile variation
}

// NewDefault creates a Generator with the default seed.
func NewDefault() *Generator {
	return New(Seed)
}

// New creates a Generator with a seed.
func New(seed int64) *Generator {
	return &Generator{
		shade:  perlin.NewPerlin(2, 2, 3, seed),
		jitter: perlin.NewPerlin(2, 2, 3, seed+1),
		ridge:  perlin.NewPerlin(2, 2, 3, seed+2),
	}
}

// Shade samples the colorizer noise at a grid coordinate.
func (g *Generator) Shade(x, y float32) float32 {
	return float32(g.shade.Noise2D(float64(x)*shadeFrequency, float64(y)*shadeFrequency))
}

// Jitter samples the boundary noise at a grid coordinate.
func (g *Generator) Jitter(x, y float32) float32 {
	return float32(g.jitter.Noise2D(float64(x)*jitterFrequency, float64(y)*jitterFrequency))
}

// Ridge samples the ridge noise at a world coordinate.
func (g *Generator) Ridge(x, y float32) float32 {
	return float32(g.ridge.Noise2D(float64(x)*ridgeFrequency, float64(y)*ridgeFrequency))
}
