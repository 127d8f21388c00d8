package main

import (
	"context"
	"fmt"
	"github.com/mamadfar/histcompare"
	"github.com/mamadfar/histcompare/surface"
	"github.com/pkg/errors"
	"image/color"
	"io"
	"log"
	"os"
)

// Label colours.
var (
	labelColor = color.NRGBA{60, 60, 60, 255}
	slotColors = [histcompare.Slots]color.Color{
		color.NRGBA{0, 90, 170, 255},
		color.NRGBA{170, 60, 0, 255},
	}
)

// exportFile renders the overlay of the configured images into the output
// file.
func exportFile(ctx context.Context, opts options, sampler *histcompare.Sampler) error {
	if opts.output == "-" {
		return export(ctx, os.Stdout, opts, sampler)
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := export(ctx, file, opts, sampler); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close output")
}

// export loads both images, renders their overlay, and writes it as PNG.
// Images that fail to decode are left out and reported as warnings.
func export(ctx context.Context, writer io.Writer, opts options, sampler *histcompare.Sampler) error {
	session := histcompare.NewSession()
	session.SetMode(opts.mode)
	for index, locator := range opts.locators {
		if err := session.Load(ctx, sampler, histcompare.Slot(index), locator); err != nil {
			log.Printf("Warning: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	raster, err := surface.NewRaster(opts.width, opts.height, color.White)
	if err != nil {
		return err
	}
	if !session.Render(histcompare.NewRenderer(), raster) {
		log.Printf("Nothing to draw")
	}
	if opts.labels {
		annotate(raster, session)
	}

	return raster.WritePNG(writer)
}

// annotate labels the mode, the images, and both ends of the horizontal axis.
func annotate(raster *surface.Raster, session *histcompare.Session) {
	width, height := raster.Size()
	right := int(width) - 4

	raster.Label(session.Mode().String(), 4, 13, labelColor)
	for index := 0; index < histcompare.Slots; index++ {
		slot := histcompare.Slot(index)
		text := fmt.Sprintf("%s: %s [%s]", slot, session.Locator(slot), session.State(slot))
		raster.Label(text, right-raster.LabelWidth(text), 13*(index+1), slotColors[index])
	}

	raster.Label("0", 4, int(height)-4, labelColor)
	raster.Label("255", right-raster.LabelWidth("255"), int(height)-4, labelColor)
}
