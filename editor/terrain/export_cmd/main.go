// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/gubacajifad-ctrl/terraforge/editor/terrain"
	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

func main() {
	var cpuProfile string
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	run()
}

// run sculpts a small demo scene and writes height/color renders.
func run() {
	field, err := terrain.New(256, 256)
	if err != nil {
		log.Fatal(err)
	}

	field.FillRegion(world.Polygon{
		{X: -80, Y: -80},
		{X: 80, Y: -80},
		{X: 80, Y: 80},
		{X: -80, Y: 80},
	}, terrain.Region{Height: 12, Falloff: 20, NoiseAmp: 1})

	field.RaiseRidge([]world.Vec2f{
		{X: -60, Y: -20},
		{X: 0, Y: 10},
		{X: 60, Y: -10},
	}, terrain.Ridge{Height: 28, HalfWidth: 18, NoiseAmp: 0.4})

	field.ApplyBrush(world.Vec2f{X: -30, Y: 40}, terrain.Brush{
		Radius:   15,
		Strength: -6,
		Mode:     terrain.SculptMode,
	})

	field.Carve(world.Vec3f{X: 30, Y: 5, Z: 40}, world.Vec3f{X: 24, Y: 10, Z: 24}, terrain.SphereShape)

	write("heightmap.png", field.ExportHeightmap())
	write("colormap.png", field.ExportColormap())
}

func write(name string, img image.Image) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = png.Encode(file, img); err != nil {
		log.Fatal(err)
	}
}
