package histcompare

// DefaultMargin is the band at the top of the drawing area that the tallest
// bucket never reaches.
const DefaultMargin = 8

// ResolveScale returns the factor that converts bucket counts into heights
// such that the largest bucket of all given histograms, considering only the
// series drawn in the given mode, is height-margin tall. nil histograms are
// ignored.
//
// The second return value is false if there is nothing to scale: all
// histograms are missing or their active series are all zero, or the margin
// leaves no room. Nothing should be drawn in that case.
func ResolveScale(height, margin float64, mode Mode, hists ...*Histogram) (float64, bool) {
	var max uint64
	for _, hist := range hists {
		if hist == nil {
			continue
		}
		if histMax := hist.Max(mode); histMax > max {
			max = histMax
		}
	}

	if max == 0 || height <= margin {
		return 0, false
	}

	return (height - margin) / float64(max), true
}
