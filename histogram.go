package histcompare

import (
	"github.com/mamadfar/histcompare/pixel"
	"image"
)

// Buckets is the number of buckets per histogram series, one per 8-bit
// channel value.
const Buckets = 256

// Series is one histogram series. The bucket index is the raw channel value.
type Series [Buckets]uint64

// Max returns the largest bucket count of the series.
func (series *Series) Max() uint64 {
	var max uint64
	for _, count := range series {
		if count > max {
			max = count
		}
	}
	return max
}

// Sum returns the total of all bucket counts.
func (series *Series) Sum() uint64 {
	var sum uint64
	for _, count := range series {
		sum += count
	}
	return sum
}

// Histogram holds the four series computed for one image. Histograms are not
// modified after they are built. When the image changes, build a new one.
type Histogram struct {
	// Brightness counts every channel value of every pixel. Its sum is three
	// times the number of pixels.
	Brightness Series

	// Red, Green, and Blue count the respective channel values. Each sums up
	// to the number of pixels.
	Red   Series
	Green Series
	Blue  Series

	// Pixels is the number of samples that went into the histogram.
	Pixels uint64
}

// add counts one sample.
func (hist *Histogram) add(sample pixel.Sample) {
	hist.Brightness[sample.R]++
	hist.Brightness[sample.G]++
	hist.Brightness[sample.B]++
	hist.Red[sample.R]++
	hist.Green[sample.G]++
	hist.Blue[sample.B]++
	hist.Pixels++
}

// Build returns the histogram of the given samples. No samples result in an
// all-zero histogram.
func Build(samples []pixel.Sample) *Histogram {
	hist := new(Histogram)
	for _, sample := range samples {
		hist.add(sample)
	}
	return hist
}

// FromImage returns the histogram of all pixels of the image. The image is
// read once and no samples are retained.
func FromImage(img image.Image) *Histogram {
	hist := new(Histogram)
	pixel.Each(img, hist.add)
	return hist
}

// Series returns the series drawn in the given mode, in drawing order.
func (hist *Histogram) Series(mode Mode) []*Series {
	if mode == Color {
		return []*Series{&hist.Red, &hist.Green, &hist.Blue}
	}
	return []*Series{&hist.Brightness}
}

// Max returns the largest single bucket count across the series drawn in the
// given mode.
func (hist *Histogram) Max(mode Mode) uint64 {
	var max uint64
	for _, series := range hist.Series(mode) {
		if seriesMax := series.Max(); seriesMax > max {
			max = seriesMax
		}
	}
	return max
}
