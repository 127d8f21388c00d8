package histcompare

import (
	"context"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // Register BMP format.
	_ "golang.org/x/image/tiff" // Register TIFF format.
	_ "golang.org/x/image/webp" // Register WebP format.
	"image"
	_ "image/gif"  // Register GIF format.
	_ "image/jpeg" // Register JPEG format.
	_ "image/png"  // Register PNG format.
	"os"
	"strings"
)

var (
	// ErrEmptyImage is returned when an image decodes to zero width or
	// height.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrUnknownReference is returned for "reference:" locators that do not
	// name a built-in image.
	ErrUnknownReference = errors.New("unknown reference image")
)

// DecodeError is returned when an image could not be loaded or decoded.
type DecodeError struct {
	// Locator identifies the image that failed.
	Locator string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (err *DecodeError) Error() string {
	return "cannot decode " + err.Locator + ": " + err.Err.Error()
}

// Unwrap returns the underlying error.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

// Sampler loads images and turns them into histograms. The zero value is
// ready to use.
type Sampler struct {
	// MaxSide, if not 0, is the maximum width and height of the images that
	// are sampled. Larger images are scaled down, preserving their aspect
	// ratio, before their pixels are counted.
	MaxSide uint
}

// Decode loads the image identified by the locator. A locator is either the
// path of an image file (PNG, JPEG, GIF, BMP, TIFF, or WebP) or the name of a
// built-in reference image prefixed with "reference:".
//
// All failures are returned as a *DecodeError.
func (sampler *Sampler) Decode(ctx context.Context, locator string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, &DecodeError{locator, err}
	}

	img, err := sampler.open(locator)
	if err != nil {
		return nil, &DecodeError{locator, err}
	}

	if err := checkBounds(img); err != nil {
		return nil, &DecodeError{locator, err}
	}

	if bounds := img.Bounds(); sampler.MaxSide > 0 && (uint(bounds.Dx()) > sampler.MaxSide || uint(bounds.Dy()) > sampler.MaxSide) {
		img = resize.Thumbnail(sampler.MaxSide, sampler.MaxSide, img, resize.Bilinear)
	}

	if err := ctx.Err(); err != nil {
		return nil, &DecodeError{locator, err}
	}

	return img, nil
}

// Histogram loads the image identified by the locator (see Decode) and
// returns its histogram.
func (sampler *Sampler) Histogram(ctx context.Context, locator string) (*Histogram, error) {
	img, err := sampler.Decode(ctx, locator)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// open decodes the image without any checks.
func (sampler *Sampler) open(locator string) (image.Image, error) {
	if name, ok := strings.CutPrefix(locator, ReferencePrefix); ok {
		img := Reference(name)
		if img == nil {
			return nil, errors.Wrap(ErrUnknownReference, name)
		}
		return img, nil
	}

	file, err := os.Open(locator)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode (format %q)", format)
	}

	return img, nil
}

// checkBounds returns ErrEmptyImage if the image has no pixels.
func checkBounds(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return ErrEmptyImage
	}
	return nil
}
