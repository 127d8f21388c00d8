package histcompare

import (
	"image/color"
)

// Surface is a drawing area. Its origin is the top left corner and the y
// axis points down.
type Surface interface {
	// Size returns the width and height of the drawing area.
	Size() (width, height float64)

	// Clear erases the whole drawing area.
	Clear()

	// SetStrokeColor sets the colour used by subsequent strokes.
	SetStrokeColor(c color.Color)

	// MoveTo starts a new path at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line from the current point to the given point.
	LineTo(x, y float64)

	// Stroke draws the current path and discards it.
	Stroke()
}

// Renderer draws two histograms on one Surface. Each bucket becomes a
// vertical stroke anchored at the bottom of the surface. The strokes of the
// two histograms are shifted horizontally in opposite directions so that
// they stay distinguishable where they overlap.
type Renderer struct {
	// Margin is the band at the top of the surface kept free of strokes.
	Margin float64

	// Offsets are the horizontal shifts applied to the first and second
	// histogram's strokes.
	Offsets [2]float64

	// Neutral is the stroke colour in Brightness mode.
	Neutral color.Color

	// Channels are the stroke colours of the red, green, and blue series in
	// Color mode.
	Channels [3]color.Color
}

// NewRenderer returns a renderer with half-transparent strokes, shifted by
// half a unit to either side.
func NewRenderer() *Renderer {
	return &Renderer{
		Margin:  DefaultMargin,
		Offsets: [2]float64{-0.5, 0.5},
		Neutral: color.NRGBA{0, 0, 0, 128},
		Channels: [3]color.Color{
			color.NRGBA{220, 0, 0, 128},
			color.NRGBA{0, 210, 0, 128},
			color.NRGBA{0, 0, 255, 128}}}
}

// Render clears the surface and draws the given histograms in the given
// mode. Either histogram may be nil, in which case it is not drawn. Both are
// scaled with the same factor. The histograms are not modified.
//
// Render returns false if nothing could be drawn because there is no
// non-zero bucket to scale to. The surface is cleared regardless.
func (renderer *Renderer) Render(surface Surface, mode Mode, first, second *Histogram) bool {
	surface.Clear()

	width, height := surface.Size()
	scale, ok := ResolveScale(height, renderer.Margin, mode, first, second)
	if !ok {
		return false
	}

	bucketWidth := width / Buckets
	colors := renderer.colors(mode)
	for index, hist := range [2]*Histogram{first, second} {
		if hist == nil {
			continue
		}
		offset := renderer.Offsets[index]
		series := hist.Series(mode)
		for bucket := 0; bucket < Buckets; bucket++ {
			x := float64(bucket)*bucketWidth + offset
			for seriesIndex, counts := range series {
				surface.SetStrokeColor(colors[seriesIndex])
				surface.MoveTo(x, height)
				surface.LineTo(x, height-float64(counts[bucket])*scale)
				surface.Stroke()
			}
		}
	}

	return true
}

// colors returns the stroke colours for the series of the given mode.
func (renderer *Renderer) colors(mode Mode) []color.Color {
	if mode == Color {
		return renderer.Channels[:]
	}
	return []color.Color{renderer.Neutral}
}
