package surface

import (
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// Raster is a drawing area backed by an RGBA image. Strokes are one unit wide,
// anti-aliased, and blended over what was drawn before.
type Raster struct {
	img        *image.RGBA
	context    *drawing.RasterGraphicContext
	background color.Color

	// Current point and whether the current path has any extent.
	x, y      float64
	extensive bool
}

// NewRaster returns a raster of the given size, cleared to the background
// colour.
func NewRaster(width, height int, background color.Color) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid raster size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	context, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, errors.Wrap(err, "graphic context")
	}
	context.SetLineWidth(1)

	raster := &Raster{
		img:        img,
		context:    context,
		background: background}
	raster.Clear()

	return raster, nil
}

// Size returns the size of the image.
func (raster *Raster) Size() (float64, float64) {
	bounds := raster.img.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

// Clear fills the image with the background colour and discards the current
// path.
func (raster *Raster) Clear() {
	draw.Draw(raster.img, raster.img.Bounds(), image.NewUniform(raster.background), image.Point{}, draw.Src)
	raster.context.BeginPath()
	raster.extensive = false
}

// SetStrokeColor sets the colour of subsequent strokes.
func (raster *Raster) SetStrokeColor(c color.Color) {
	raster.context.SetStrokeColor(c)
}

// MoveTo starts a new subpath.
func (raster *Raster) MoveTo(x, y float64) {
	raster.context.MoveTo(x, y)
	raster.x, raster.y = x, y
}

// LineTo adds a line to the current subpath.
func (raster *Raster) LineTo(x, y float64) {
	raster.context.LineTo(x, y)
	if x != raster.x || y != raster.y {
		raster.extensive = true
	}
	raster.x, raster.y = x, y
}

// Stroke draws the current path and starts a new one. Paths without extent
// are discarded without drawing.
func (raster *Raster) Stroke() {
	if raster.extensive {
		raster.context.Stroke()
	}
	raster.context.BeginPath()
	raster.extensive = false
}

// Label draws text with its baseline starting at the given point.
func (raster *Raster) Label(text string, x, y int, c color.Color) {
	drawer := &font.Drawer{
		Dst:  raster.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}}
	drawer.DrawString(text)
}

// LabelWidth returns the width of the text as drawn by Label.
func (raster *Raster) LabelWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// Image returns the image drawn on. It is not a copy.
func (raster *Raster) Image() *image.RGBA {
	return raster.img
}

// WritePNG encodes the image as PNG.
func (raster *Raster) WritePNG(writer io.Writer) error {
	return errors.Wrap(png.Encode(writer, raster.img), "encode png")
}
