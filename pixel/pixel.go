/*
Package pixel provides raster-order access to the colour channels of bitmap
images.
*/
package pixel

import (
	"image"
	"image/color"
)

// Channels is the number of colour channels per sample. Alpha is never
// sampled.
const Channels = 3

// Sample is one decoded pixel. Channel values are not premultiplied by alpha.
type Sample struct {
	R, G, B uint8
}

// FromColor converts a native Color type into a Sample. Colours are converted
// to non-premultiplied RGBA first so that translucent pixels keep the channel
// values they were stored with.
func FromColor(gen color.Color) Sample {
	c := color.NRGBAModel.Convert(gen).(color.NRGBA)
	return Sample{c.R, c.G, c.B}
}

// Count returns the number of samples Each will produce for the image.
func Count(img image.Image) int {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}
	return bounds.Dx() * bounds.Dy()
}

// Each calls fn for every pixel of the image in raster order: rows from top
// to bottom, and within a row, columns from left to right.
func Each(img image.Image, fn func(Sample)) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
			offset := src.PixOffset(bounds.Min.X, row)
			line := src.Pix[offset : offset+4*bounds.Dx()]
			for index := 0; index < len(line); index += 4 {
				fn(Sample{line[index], line[index+1], line[index+2]})
			}
		}
	case *image.RGBA:
		for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
			offset := src.PixOffset(bounds.Min.X, row)
			line := src.Pix[offset : offset+4*bounds.Dx()]
			for index := 0; index < len(line); index += 4 {
				alpha := line[index+3]
				if alpha == 0xff {
					// Opaque. Nothing to undo.
					fn(Sample{line[index], line[index+1], line[index+2]})
					continue
				}
				fn(FromColor(color.RGBA{line[index], line[index+1], line[index+2], alpha}))
			}
		}
	default:
		for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
			for column := bounds.Min.X; column < bounds.Max.X; column++ {
				fn(FromColor(img.At(column, row)))
			}
		}
	}
}

// Samples returns all samples of the image in raster order.
func Samples(img image.Image) []Sample {
	samples := make([]Sample, 0, Count(img))
	Each(img, func(sample Sample) {
		samples = append(samples, sample)
	})
	return samples
}
