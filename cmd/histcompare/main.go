// Usage examples:
//
// # Interactive comparison of the built-in reference images
// ./histcompare
//
// # Compare two photos in color mode
// ./histcompare -m color without-flash.jpg with-flash.jpg
//
// # Write the overlay to a PNG file, annotated, and exit
// ./histcompare -o overlay.png -labels a.png b.png
//
// # Write the overlay to stdout
// ./histcompare -o - a.png b.png > overlay.png

package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/mamadfar/histcompare"
	"github.com/pkg/errors"
	"log"
	"os"
	"strconv"
	"strings"
)

// defaultLocators are compared when no images are given.
var defaultLocators = [histcompare.Slots]string{
	histcompare.ReferencePrefix + "dim",
	histcompare.ReferencePrefix + "flash",
}

// options holds the command line configuration.
type options struct {
	mode     histcompare.Mode
	width    int
	height   int
	maxSide  uint
	output   string
	labels   bool
	logPath  string
	locators [histcompare.Slots]string
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	var reported reportedError
	if errors.As(err, &reported) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logFile, err := setupLogging(opts.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Comparing %q and %q in %s mode", opts.locators[0], opts.locators[1], opts.mode)

	sampler := &histcompare.Sampler{MaxSide: opts.maxSide}

	if opts.output != "" {
		err = exportFile(context.Background(), opts, sampler)
	} else {
		err = runInteractive(opts, sampler)
	}
	if err != nil {
		log.Printf("Error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// reportedError is a command line error that the flag package has already
// printed together with the usage.
type reportedError struct {
	error
}

// Unwrap returns the flag package's error.
func (err reportedError) Unwrap() error {
	return err.error
}

// parseOptions parses the command line arguments (without the program name).
func parseOptions(args []string) (options, error) {
	var (
		opts    options
		modeStr string
		sizeStr string
	)

	flags := flag.NewFlagSet("histcompare", flag.ContinueOnError)
	flags.StringVar(&modeStr, "m", "brightness", "Histogram mode: 'brightness' or 'color'")
	flags.StringVar(&sizeStr, "size", "512x256", "Size of the drawing area (WIDTHxHEIGHT)")
	flags.UintVar(&opts.maxSide, "max-side", 0, "Scale images down to at most this many pixels per side before counting (0 = off)")
	flags.StringVar(&opts.output, "o", "", "Write the overlay as PNG to this file ('-' for stdout) instead of starting the viewer")
	flags.BoolVar(&opts.labels, "labels", false, "Annotate the PNG with the mode, the images, and the axis ends")
	flags.StringVar(&opts.logPath, "log", "", "Append log messages to this file (discarded if empty)")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: histcompare [options] [image1 [image2]]")
		fmt.Fprintln(flags.Output(), "\nImages are file paths or built-in references: "+
			histcompare.ReferencePrefix+strings.Join(histcompare.ReferenceNames(), ", "+histcompare.ReferencePrefix))
		fmt.Fprintln(flags.Output(), "\nOptions:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return opts, reportedError{err}
	}

	mode, err := histcompare.ParseMode(modeStr)
	if err != nil {
		return opts, err
	}
	opts.mode = mode

	if opts.width, opts.height, err = parseSize(sizeStr); err != nil {
		return opts, err
	}

	if flags.NArg() > histcompare.Slots {
		return opts, errors.Errorf("at most %d images can be compared, got %d", histcompare.Slots, flags.NArg())
	}
	opts.locators = defaultLocators
	for index, locator := range flags.Args() {
		opts.locators[index] = locator
	}

	return opts, nil
}

// parseSize parses a "WIDTHxHEIGHT" size.
func parseSize(size string) (int, int, error) {
	widthStr, heightStr, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return 0, 0, errors.Errorf("invalid size %q (use WIDTHxHEIGHT)", size)
	}
	width, err := strconv.Atoi(strings.TrimSpace(widthStr))
	if err != nil || width <= 0 {
		return 0, 0, errors.Errorf("invalid width in size %q", size)
	}
	height, err := strconv.Atoi(strings.TrimSpace(heightStr))
	if err != nil || height <= histcompare.DefaultMargin {
		return 0, 0, errors.Errorf("invalid height in size %q (must exceed %d)", size, histcompare.DefaultMargin)
	}
	return width, height, nil
}
