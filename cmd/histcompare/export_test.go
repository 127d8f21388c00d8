package main

import (
	"bytes"
	"context"
	"github.com/mamadfar/histcompare"
	"image"
	"image/png"
	"path/filepath"
	"testing"
)

// darkPixels counts the pixels of an image that are not white.
func darkPixels(img image.Image) int {
	var dark int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
				dark++
			}
		}
	}
	return dark
}

func exportImage(t *testing.T, opts options) image.Image {
	t.Helper()
	var buffer bytes.Buffer
	if err := export(context.Background(), &buffer, opts, new(histcompare.Sampler)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	img, err := png.Decode(&buffer)
	if err != nil {
		t.Fatalf("Export is not a PNG: %v", err)
	}
	return img
}

func TestExport_References(t *testing.T) {
	opts, err := parseOptions([]string{"-m", "color", "-size", "256x100"})
	if err != nil {
		t.Fatal(err)
	}
	img := exportImage(t, opts)
	if img.Bounds() != image.Rect(0, 0, 256, 100) {
		t.Errorf("Expected 256x100 image, got %v", img.Bounds())
	}
	if darkPixels(img) == 0 {
		t.Error("Expected histogram strokes in the export")
	}
}

func TestExport_FailedImage(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")
	opts, err := parseOptions([]string{missing})
	if err != nil {
		t.Fatal(err)
	}
	if darkPixels(exportImage(t, opts)) == 0 {
		t.Error("Expected the second image to be drawn alone")
	}

	opts.locators[1] = missing
	if dark := darkPixels(exportImage(t, opts)); dark != 0 {
		t.Errorf("Expected a blank export, got %d dark pixels", dark)
	}

	opts.labels = true
	if darkPixels(exportImage(t, opts)) == 0 {
		t.Error("Expected labels on the blank export")
	}
}
