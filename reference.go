package histcompare

import (
	"image"
	"image/color"
	"sort"
)

// ReferencePrefix marks locators of built-in reference images.
const ReferencePrefix = "reference:"

// Size of the reference images.
const (
	referenceWidth  = 240
	referenceHeight = 160
)

// references maps reference image names to the exposure applied to the
// foreground and the background of the scene.
var references = map[string]struct {
	foreground, background float64
}{
	"dim":   {0.55, 0.8},
	"flash": {1.6, 0.9},
}

// ReferenceNames returns the names of all built-in reference images, sorted.
func ReferenceNames() []string {
	names := make([]string, 0, len(references))
	for name := range references {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reference returns a newly generated built-in reference image or nil if
// there is none with that name. The images show the same synthetic scene:
// "dim" as if taken without flash, "flash" with a flash lighting up the
// foreground.
func Reference(name string) image.Image {
	exposure, ok := references[name]
	if !ok {
		return nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, referenceWidth, referenceHeight))
	for row := 0; row < referenceHeight; row++ {
		for column := 0; column < referenceWidth; column++ {
			base, near := scene(column, row)
			gain := exposure.background
			if near {
				gain = exposure.foreground
			}
			img.SetNRGBA(column, row, color.NRGBA{
				expose(base.R, gain),
				expose(base.G, gain),
				expose(base.B, gain),
				0xff})
		}
	}

	return img
}

// scene returns the unexposed colour at the given position and whether it
// belongs to the foreground.
func scene(x, y int) (color.NRGBA, bool) {
	// A sphere in the lower left quarter.
	dx, dy := x-70, y-105
	if r2 := dx*dx + dy*dy; r2 < 40*40 {
		shade := uint8(200 - r2/16)
		return color.NRGBA{shade, uint8(int(shade) * 3 / 5), 60, 0xff}, true
	}

	// A box on the right.
	if x >= 150 && x < 210 && y >= 80 && y < 140 {
		return color.NRGBA{50, 90 + uint8(y-80), 140, 0xff}, true
	}

	// The floor.
	if y >= 120 {
		return color.NRGBA{90, 80, uint8(60 + (y-120)/2), 0xff}, false
	}

	// A wall, darker towards the top.
	level := uint8(40 + y/2)
	return color.NRGBA{level, level, level + 10, 0xff}, false
}

// expose scales a channel value, clipping at white.
func expose(value uint8, gain float64) uint8 {
	scaled := float64(value) * gain
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
