package histcompare

import (
	"context"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeImage encodes the image into a file in a temporary directory and
// returns the file's path.
func writeImage(t *testing.T, name string, img image.Image, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := encode(file, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// Lossless formats must produce exactly the histogram of the source image.
func TestSamplerFormats(t *testing.T) {
	img := noise(31, 17, 7)
	for index := 3; index < len(img.Pix); index += 4 {
		// Opaque, so that encoders keep the channel values as they are.
		img.Pix[index] = 0xff
	}
	expected := FromImage(img)

	encoders := map[string]func(io.Writer, image.Image) error{
		"image.png": png.Encode,
		"image.bmp": bmp.Encode,
		"image.tif": func(writer io.Writer, img image.Image) error { return tiff.Encode(writer, img, nil) },
	}

	sampler := new(Sampler)
	for name, encode := range encoders {
		path := writeImage(t, name, img, encode)
		hist, err := sampler.Histogram(context.Background(), path)
		if err != nil {
			t.Errorf("Decoding %s failed: %v", name, err)
			continue
		}
		if *hist != *expected {
			t.Errorf("Histogram of %s differs from the source image", name)
		}
	}
}

// Failures are reported as DecodeErrors that keep their cause.
func TestSamplerErrors(t *testing.T) {
	sampler := new(Sampler)
	var decodeErr *DecodeError

	missing := filepath.Join(t.TempDir(), "missing.png")
	_, err := sampler.Decode(context.Background(), missing)
	if !errors.As(err, &decodeErr) || decodeErr.Locator != missing {
		t.Errorf("Missing file should fail with a DecodeError, failed with %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Error should keep its cause, is %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("this is not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = sampler.Decode(context.Background(), garbage)
	if !errors.As(err, &decodeErr) || !errors.Is(err, image.ErrFormat) {
		t.Errorf("Unknown format should fail with a DecodeError, failed with %v", err)
	}

	_, err = sampler.Histogram(context.Background(), ReferencePrefix+"sunset")
	if !errors.As(err, &decodeErr) || !errors.Is(err, ErrUnknownReference) {
		t.Errorf("Unknown reference should fail with a DecodeError, failed with %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sampler.Decode(ctx, ReferencePrefix+"dim")
	if !errors.As(err, &decodeErr) || !errors.Is(err, context.Canceled) {
		t.Errorf("Cancelled decode should fail with a DecodeError, failed with %v", err)
	}
}

// Images without pixels are rejected.
func TestCheckBounds(t *testing.T) {
	if err := checkBounds(image.NewRGBA(image.Rect(0, 0, 0, 4))); err != ErrEmptyImage {
		t.Errorf("Zero width image should fail with ErrEmptyImage, failed with %v", err)
	}
	if err := checkBounds(image.NewRGBA(image.Rect(0, 0, 3, 0))); err != ErrEmptyImage {
		t.Errorf("Zero height image should fail with ErrEmptyImage, failed with %v", err)
	}
	if err := checkBounds(image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Errorf("1x1 image should be accepted, failed with %v", err)
	}
}

// Large images are scaled down before sampling.
func TestSamplerMaxSide(t *testing.T) {
	sampler := &Sampler{MaxSide: 60}
	img, err := sampler.Decode(context.Background(), ReferencePrefix+"dim")
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > 60 || bounds.Dy() > 60 || bounds.Dx() < 59 {
		t.Errorf("Image should be scaled to 60 pixels wide, is %dx%d", bounds.Dx(), bounds.Dy())
	}

	hist := FromImage(img)
	checkSums(t, hist, uint64(bounds.Dx()*bounds.Dy()))

	// Small images are left alone.
	sampler.MaxSide = 1000
	img, err = sampler.Decode(context.Background(), ReferencePrefix+"dim")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != referenceWidth || img.Bounds().Dy() != referenceHeight {
		t.Errorf("Image should not be scaled, is %v", img.Bounds())
	}
}

// The flash reference image is brighter than the dim one.
func TestReferenceImages(t *testing.T) {
	if names := ReferenceNames(); len(names) != 2 || names[0] != "dim" || names[1] != "flash" {
		t.Errorf("Reference names should be [dim flash], are %v", names)
	}
	if Reference("nonexistent") != nil {
		t.Error("Unknown reference should be nil")
	}

	mean := func(hist *Histogram) float64 {
		var total float64
		for bucket, count := range hist.Brightness {
			total += float64(bucket) * float64(count)
		}
		return total / float64(3*hist.Pixels)
	}

	dim, flash := FromImage(Reference("dim")), FromImage(Reference("flash"))
	checkSums(t, dim, referenceWidth*referenceHeight)
	checkSums(t, flash, referenceWidth*referenceHeight)
	if mean(flash) <= mean(dim) {
		t.Errorf("Flash image should be brighter, means are %v and %v", mean(flash), mean(dim))
	}
	if dim.Brightness[255] != 0 {
		t.Errorf("Dim image should not clip, has %d white values", dim.Brightness[255])
	}
	if flash.Brightness[255] == 0 {
		t.Error("Flash image should clip")
	}
}

// Lossy and paletted formats decode to the right number of pixels.
func TestSamplerLossyFormats(t *testing.T) {
	img := noise(29, 13, 8)
	for index := 3; index < len(img.Pix); index += 4 {
		img.Pix[index] = 0xff
	}

	encoders := map[string]func(io.Writer, image.Image) error{
		"image.jpg": func(writer io.Writer, img image.Image) error { return jpeg.Encode(writer, img, nil) },
		"image.gif": func(writer io.Writer, img image.Image) error { return gif.Encode(writer, img, nil) },
	}

	sampler := new(Sampler)
	for name, encode := range encoders {
		path := writeImage(t, name, img, encode)
		hist, err := sampler.Histogram(context.Background(), path)
		if err != nil {
			t.Errorf("Decoding %s failed: %v", name, err)
			continue
		}
		checkSums(t, hist, 29*13)
	}
}

// WebP files decode. The test file is a 4x3 lossless image of one colour.
func TestSamplerWebP(t *testing.T) {
	hist, err := new(Sampler).Histogram(context.Background(), filepath.Join("testdata", "solid.webp"))
	if err != nil {
		t.Fatalf("Decoding WebP failed: %v", err)
	}
	checkSums(t, hist, 12)
	if hist.Red[200] != 12 || hist.Green[100] != 12 || hist.Blue[50] != 12 {
		t.Errorf("All pixels should be (200, 100, 50), buckets are %d, %d, %d",
			hist.Red[200], hist.Green[100], hist.Blue[50])
	}
}
