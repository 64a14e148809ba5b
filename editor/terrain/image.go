// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"image"

	"golang.org/x/image/draw"
)

// ExportHeightmap renders the height buffer as a grayscale image, normalized
// so the highest cell maps to full intensity. Pure transform; the field is
// not modified.
func (f *Field) ExportHeightmap() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.resolution, f.resolution))

	var peak float32
	for _, h := range f.height {
		if h > peak {
			peak = h
		}
	}
	if peak <= 0 {
		return img
	}

	inv := 1 / peak
	for row := 0; row < f.resolution; row++ {
		for col := 0; col < f.resolution; col++ {
			img.Pix[img.PixOffset(col, row)] = floatToByte(f.Height(col, row) * inv)
		}
	}

	return img
}

// ExportColormap renders the color buffer as an RGB image. Pure transform.
func (f *Field) ExportColormap() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.resolution, f.resolution))

	for row := 0; row < f.resolution; row++ {
		for col := 0; col < f.resolution; col++ {
			img.SetRGBA(col, row, f.Color(col, row).Color())
		}
	}

	return img
}

// LoadImage imports a grayscale heightmap image, resampling it to the field
// resolution when the sizes differ, and sets each cell's height to
// sample*heightScale. The whole field is recolored.
func (f *Field) LoadImage(img image.Image, heightScale float32) error {
	bounds := img.Bounds()
	if bounds.Dx() != f.resolution || bounds.Dy() != f.resolution {
		resized := image.NewGray(image.Rect(0, 0, f.resolution, f.resolution))
		draw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, draw.Src, nil)
		img = resized
		bounds = resized.Bounds()
	}

	samples := make([]float32, f.resolution*f.resolution)
	const factor = 1.0 / 0xffff
	for row := 0; row < f.resolution; row++ {
		for col := 0; col < f.resolution; col++ {
			r, g, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			// Luma approximation is good enough for heightmaps.
			samples[row*f.resolution+col] = float32(r/4+g/2+b/4) * factor
		}
	}

	return f.LoadSamples(samples, heightScale)
}
