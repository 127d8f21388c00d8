package surface

import (
	"github.com/mamadfar/histcompare"
	"image/color"
	"testing"
)

var _ histcompare.Surface = (*Recorder)(nil)

// Only stroked segments after the last clear are replayed.
func TestRecorderLines(t *testing.T) {
	recorder := NewRecorder(10, 10)
	red := color.NRGBA{255, 0, 0, 255}

	recorder.MoveTo(0, 0)
	recorder.LineTo(1, 1)
	recorder.Stroke()
	recorder.Clear()

	recorder.SetStrokeColor(red)
	recorder.MoveTo(2, 10)
	recorder.LineTo(2, 5)
	recorder.LineTo(3, 5)
	recorder.Stroke()
	recorder.MoveTo(9, 9)
	recorder.LineTo(8, 8)

	lines := recorder.Lines()
	if len(lines) != 2 {
		t.Fatalf("Should have 2 lines, has %d", len(lines))
	}
	if lines[0] != (Line{2, 10, 2, 5, red}) || lines[1] != (Line{2, 5, 3, 5, red}) {
		t.Errorf("Wrong lines %v", lines)
	}
	if recorder.Clears() != 1 {
		t.Errorf("Should have 1 clear, has %d", recorder.Clears())
	}

	recorder.Reset()
	if len(recorder.Ops) != 0 || len(recorder.Lines()) != 0 {
		t.Error("Reset should discard all operations")
	}
}
