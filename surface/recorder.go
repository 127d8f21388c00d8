package surface

import (
	"image/color"
)

// OpKind is the kind of a recorded drawing operation.
type OpKind int

// Recorded operations.
const (
	OpClear OpKind = iota
	OpColor
	OpMoveTo
	OpLineTo
	OpStroke
)

// Op is one recorded drawing operation. X and Y are set for OpMoveTo and
// OpLineTo, Color for OpColor.
type Op struct {
	Kind  OpKind
	X, Y  float64
	Color color.Color
}

// Line is a stroked path segment together with the colour it was stroked
// with.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          color.Color
}

// Recorder is a drawing area that does not draw but records all operations.
type Recorder struct {
	Width, Height float64

	// Ops holds all operations since the last Reset.
	Ops []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size returns the size given to NewRecorder.
func (recorder *Recorder) Size() (float64, float64) {
	return recorder.Width, recorder.Height
}

// Clear records a clear operation.
func (recorder *Recorder) Clear() {
	recorder.Ops = append(recorder.Ops, Op{Kind: OpClear})
}

// SetStrokeColor records a colour change.
func (recorder *Recorder) SetStrokeColor(c color.Color) {
	recorder.Ops = append(recorder.Ops, Op{Kind: OpColor, Color: c})
}

// MoveTo records a move.
func (recorder *Recorder) MoveTo(x, y float64) {
	recorder.Ops = append(recorder.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

// LineTo records a line.
func (recorder *Recorder) LineTo(x, y float64) {
	recorder.Ops = append(recorder.Ops, Op{Kind: OpLineTo, X: x, Y: y})
}

// Stroke records a stroke.
func (recorder *Recorder) Stroke() {
	recorder.Ops = append(recorder.Ops, Op{Kind: OpStroke})
}

// Reset discards all recorded operations.
func (recorder *Recorder) Reset() {
	recorder.Ops = recorder.Ops[:0]
}

// Lines replays the recorded operations and returns the stroked line
// segments in the order they were drawn. Segments of paths that were never
// stroked and segments drawn before the last clear are not returned.
func (recorder *Recorder) Lines() []Line {
	var (
		lines   []Line
		pending []Line
		stroke  color.Color = color.Black
		x, y    float64
	)
	for _, op := range recorder.Ops {
		switch op.Kind {
		case OpClear:
			lines, pending = nil, nil
		case OpColor:
			stroke = op.Color
		case OpMoveTo:
			x, y = op.X, op.Y
		case OpLineTo:
			pending = append(pending, Line{x, y, op.X, op.Y, nil})
			x, y = op.X, op.Y
		case OpStroke:
			for _, line := range pending {
				line.Color = stroke
				lines = append(lines, line)
			}
			pending = pending[:0]
		}
	}
	return lines
}

// Clears returns the number of recorded clear operations.
func (recorder *Recorder) Clears() int {
	var clears int
	for _, op := range recorder.Ops {
		if op.Kind == OpClear {
			clears++
		}
	}
	return clears
}
